package projections

import (
	"context"

	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	domainAccount "fatiguelog/internal/domain/account"
	domainFatigue "fatiguelog/internal/domain/fatigue"
	domainPractice "fatiguelog/internal/domain/practice"
	domainTeam "fatiguelog/internal/domain/team"
)

// FatigueStore interface for fatigue record queries.
type FatigueStore interface {
	List(ctx context.Context, filter fatigueStore.ListFilter) ([]domainFatigue.Record, error)
}

// PracticeStore interface for practice window queries.
type PracticeStore interface {
	List(ctx context.Context, filter practiceStore.ListFilter) ([]domainPractice.Window, error)
}

// TeamStore interface for team queries.
type TeamStore interface {
	List(ctx context.Context) ([]domainTeam.Team, error)
}

// AccountStore interface for account queries.
type AccountStore interface {
	GetByID(ctx context.Context, id string) (domainAccount.Account, error)
}
