package account

import (
	"context"

	domain "fatiguelog/internal/domain/account"
)

// Store persists Account state and confirmation tokens.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Save(ctx context.Context, value domain.Account) error
	List(ctx context.Context, filter ListFilter) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
	SaveConfirmationToken(ctx context.Context, token domain.ConfirmationToken) error
	GetConfirmationToken(ctx context.Context, token string) (domain.ConfirmationToken, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Role     string
	TeamCode string
	Limit    int
	Offset   int
}
