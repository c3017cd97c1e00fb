package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/fatigue"
	"fatiguelog/internal/domain/team"
)

// FatigueStoreForRecord defines the store interface needed by RecordFatigue.
type FatigueStoreForRecord interface {
	Insert(ctx context.Context, r fatigue.Record) error
}

// AccountLookupForRecord resolves the submitting account.
type AccountLookupForRecord interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
}

// TeamLookupForRecord checks that a group code refers to a known team.
type TeamLookupForRecord interface {
	GetByCode(ctx context.Context, code string) (team.Team, error)
}

// RecordFatigueInput carries input for the record-fatigue orchestrator.
type RecordFatigueInput struct {
	AccountID string
	Date      string // YYYY-MM-DD
	Group     string // team code
	Score     float64
}

// RecordFatigueDeps holds dependencies for RecordFatigue.
type RecordFatigueDeps struct {
	FatigueStore FatigueStoreForRecord
	AccountStore AccountLookupForRecord
	TeamStore    TeamLookupForRecord
	GenerateID   func() string
	Now          func() time.Time
}

var ErrUnknownGroup = errors.New("unknown group code")

// ExecuteRecordFatigue inserts a fatigue record for the submitting athlete.
// Records are insert-only; a second submission on the same day is a new row
// and both are averaged together.
// PRE: AccountID belongs to a logged-in account; Group is an existing team code
// POST: Record saved with the account's display name captured at submission time
func ExecuteRecordFatigue(ctx context.Context, input RecordFatigueInput, deps RecordFatigueDeps) (string, error) {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return "", err
	}

	if _, err := deps.TeamStore.GetByCode(ctx, input.Group); err != nil {
		return "", ErrUnknownGroup
	}

	rec := fatigue.Record{
		ID:          deps.GenerateID(),
		Date:        input.Date,
		Group:       input.Group,
		Score:       input.Score,
		AccountID:   acct.ID,
		DisplayName: acct.DisplayName(),
		CreatedAt:   deps.Now(),
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}

	if err := deps.FatigueStore.Insert(ctx, rec); err != nil {
		return "", err
	}

	slog.Info("fatigue_event", "event", "record_saved", "account_id", acct.ID, "date", rec.Date, "group", rec.Group, "score", rec.Score)
	return rec.ID, nil
}
