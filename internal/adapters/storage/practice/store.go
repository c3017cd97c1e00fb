package practice

import (
	"context"

	domain "fatiguelog/internal/domain/practice"
)

// Store persists practice windows. Windows are insert-only; a correction is
// a fresh insert.
type Store interface {
	Insert(ctx context.Context, value domain.Window) error
	List(ctx context.Context, filter ListFilter) ([]domain.Window, error)
}

// ListFilter carries filtering parameters for List operations. Zero-value
// fields are not applied.
type ListFilter struct {
	Group    string
	Date     string
	FromDate string
}
