package fatigue

import (
	"context"
	"strings"
	"time"

	"fatiguelog/internal/adapters/storage"
	domain "fatiguelog/internal/domain/fatigue"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new fatigue record store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a new fatigue record.
// PRE: entity has been validated
// POST: Entity is inserted; duplicate IDs fail
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Record) error {
	query := `INSERT INTO fatigue_record (id, date, group_code, score, account_id, display_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Date,
		entity.Group,
		entity.Score,
		entity.AccountID,
		entity.DisplayName,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// List retrieves fatigue records matching the filter, ordered by date
// ascending (creation time breaks ties).
// PRE: filter has valid parameters
// POST: Returns matching records
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Record, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT id, date, group_code, score, account_id, display_name, created_at FROM fatigue_record")

	if filter.AccountID != "" {
		conds = append(conds, "account_id = ?")
		args = append(args, filter.AccountID)
	}
	if filter.Group != "" {
		conds = append(conds, "group_code = ?")
		args = append(args, filter.Group)
	}
	if filter.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date)
	}
	if filter.FromDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, filter.FromDate)
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY date ASC, created_at ASC")

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Record
	for rows.Next() {
		var entity domain.Record
		var createdAt string
		if err := rows.Scan(
			&entity.ID,
			&entity.Date,
			&entity.Group,
			&entity.Score,
			&entity.AccountID,
			&entity.DisplayName,
			&createdAt,
		); err != nil {
			return nil, err
		}
		entity.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		results = append(results, entity)
	}
	return results, rows.Err()
}
