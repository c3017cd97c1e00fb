package fatigue

import (
	"context"

	domain "fatiguelog/internal/domain/fatigue"
)

// Store persists fatigue records. Records are insert-only: there is no
// update or delete operation.
type Store interface {
	Insert(ctx context.Context, value domain.Record) error
	List(ctx context.Context, filter ListFilter) ([]domain.Record, error)
}

// ListFilter carries filtering parameters for List operations. All rows are
// returned ordered by date ascending; zero-value fields are not applied.
type ListFilter struct {
	AccountID string
	Group     string
	Date      string
	FromDate  string
}
