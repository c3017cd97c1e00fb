package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fatiguelog/internal/domain/practice"
	"fatiguelog/internal/domain/team"
)

// PracticeStoreForSave defines the store interface needed by SavePracticeWindow.
type PracticeStoreForSave interface {
	Insert(ctx context.Context, w practice.Window) error
}

// TeamLookupForPractice checks that a group code refers to a known team.
type TeamLookupForPractice interface {
	GetByCode(ctx context.Context, code string) (team.Team, error)
}

// SavePracticeWindowInput carries input for the save-practice-window orchestrator.
type SavePracticeWindowInput struct {
	AccountID string // the admin saving the window
	Date      string // YYYY-MM-DD
	Group     string // team code
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// SavePracticeWindowDeps holds dependencies for SavePracticeWindow.
type SavePracticeWindowDeps struct {
	PracticeStore PracticeStoreForSave
	TeamStore     TeamLookupForPractice
	GenerateID    func() string
	Now           func() time.Time
}

// ExecuteSavePracticeWindow inserts a practice time window for a group.
// The duration in minutes is derived from the clock times; an end before the
// start yields a negative duration and is stored as-is.
// PRE: Group is an existing team code; times are valid "HH:MM" clocks
// POST: Window saved with derived Minutes
func ExecuteSavePracticeWindow(ctx context.Context, input SavePracticeWindowInput, deps SavePracticeWindowDeps) (string, error) {
	if _, err := deps.TeamStore.GetByCode(ctx, input.Group); err != nil {
		return "", ErrUnknownGroup
	}

	minutes, err := practice.Minutes(input.StartTime, input.EndTime)
	if err != nil {
		return "", err
	}

	w := practice.Window{
		ID:        deps.GenerateID(),
		Date:      input.Date,
		Group:     input.Group,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Minutes:   minutes,
		CreatedBy: input.AccountID,
		CreatedAt: deps.Now(),
	}
	if err := w.Validate(); err != nil {
		return "", err
	}

	if err := deps.PracticeStore.Insert(ctx, w); err != nil {
		return "", err
	}

	slog.Info("practice_event", "event", "window_saved", "date", w.Date, "group", w.Group, "minutes", w.Minutes)
	return w.ID, nil
}
