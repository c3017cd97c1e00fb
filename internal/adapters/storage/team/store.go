package team

import (
	"context"

	domain "fatiguelog/internal/domain/team"
)

// Store persists Team state.
type Store interface {
	GetByCode(ctx context.Context, code string) (domain.Team, error)
	Save(ctx context.Context, value domain.Team) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Team, error)
	Count(ctx context.Context) (int, error)
}
