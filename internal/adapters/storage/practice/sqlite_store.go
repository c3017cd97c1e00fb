package practice

import (
	"context"
	"strings"
	"time"

	"fatiguelog/internal/adapters/storage"
	domain "fatiguelog/internal/domain/practice"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new practice window store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a new practice window.
// PRE: entity has been validated (Minutes derived)
// POST: Entity is inserted; duplicate IDs fail
func (s *SQLiteStore) Insert(ctx context.Context, entity domain.Window) error {
	query := `INSERT INTO practice_window (id, date, group_code, start_time, end_time, minutes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Date,
		entity.Group,
		entity.StartTime,
		entity.EndTime,
		entity.Minutes,
		entity.CreatedBy,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// List retrieves practice windows matching the filter, ordered by date
// ascending.
// PRE: filter has valid parameters
// POST: Returns matching windows
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Window, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT id, date, group_code, start_time, end_time, minutes, created_by, created_at FROM practice_window")

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
	queryBuilder.WriteString(" ORDER BY date ASC, start_time ASC")

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Window
	for rows.Next() {
		var entity domain.Window
		var createdAt string
		if err := rows.Scan(
			&entity.ID,
			&entity.Date,
			&entity.Group,
			&entity.StartTime,
			&entity.EndTime,
			&entity.Minutes,
			&entity.CreatedBy,
			&createdAt,
		); err != nil {
			return nil, err
		}
		entity.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		results = append(results, entity)
	}
	return results, rows.Err()
}
