package fatigue

import (
	"errors"
	"time"
)

// Score bounds. The submission form steps in 0.1 increments but any float
// within range is accepted.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// DateLayout is the calendar-day format used across records and windows.
const DateLayout = "2006-01-02"

// Domain errors
var (
	ErrEmptyDate       = errors.New("date cannot be empty")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrEmptyGroup      = errors.New("group cannot be empty")
	ErrScoreOutOfRange = errors.New("fatigue score must be between 0 and 10")
	ErrEmptyAccount    = errors.New("account id cannot be empty")
)

// Record is one athlete's self-reported fatigue score for a date and group.
// Records are insert-only: there is no edit or delete path, and a user may
// submit more than once per day; duplicates are simply averaged together.
type Record struct {
	ID          string
	Date        string // YYYY-MM-DD
	Group       string // team code, e.g. "T1"
	Score       float64
	AccountID   string
	DisplayName string
	CreatedAt   time.Time
}

// Validate checks if the Record has valid data.
// PRE: Record struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Record) Validate() error {
	if r.Date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if r.Group == "" {
		return ErrEmptyGroup
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return ErrScoreOutOfRange
	}
	if r.AccountID == "" {
		return ErrEmptyAccount
	}
	return nil
}
