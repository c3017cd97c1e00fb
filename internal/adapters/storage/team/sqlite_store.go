package team

import (
	"context"
	"database/sql"
	"fmt"

	"fatiguelog/internal/adapters/storage"
	domain "fatiguelog/internal/domain/team"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new TeamStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByCode retrieves a Team by its group code.
// PRE: code is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByCode(ctx context.Context, code string) (domain.Team, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, code, name FROM team WHERE code = ?", code)

	var entity domain.Team
	err := row.Scan(&entity.ID, &entity.Code, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Team{}, fmt.Errorf("team not found: %w", err)
	}
	return entity, err
}

// Save persists a Team to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Team) error {
	query := `INSERT INTO team (id, code, name) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET code=excluded.code, name=excluded.name`
	_, err := s.db.ExecContext(ctx, query, entity.ID, entity.Code, entity.Name)
	return err
}

// Delete removes a Team from the database. Records referencing the team's
// code are left in place; they simply stop matching any window.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM team WHERE id = ?", id)
	return err
}

// List retrieves all Teams ordered by code.
// PRE: none
// POST: Returns all teams
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, code, name FROM team ORDER BY code ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Team
	for rows.Next() {
		var entity domain.Team
		if err := rows.Scan(&entity.ID, &entity.Code, &entity.Name); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of teams.
// PRE: none
// POST: Returns total team count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM team").Scan(&count)
	return count, err
}
