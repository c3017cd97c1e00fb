package practice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fatiguelog/internal/domain/fatigue"
)

// Domain errors
var (
	ErrEmptyDate    = errors.New("date cannot be empty")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrEmptyGroup   = errors.New("group cannot be empty")
	ErrInvalidClock = errors.New("time must be HH:MM")
)

// Window is a team's scheduled practice start/end time for a date.
// Minutes is derived from the clock strings at creation; a window whose end
// precedes its start yields a negative duration, which is stored and
// displayed as-is (no midnight wraparound).
type Window struct {
	ID        string
	Date      string // YYYY-MM-DD
	Group     string // team code
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Minutes   int
	CreatedBy string
	CreatedAt time.Time
}

// Validate checks if the Window has valid data and recomputes Minutes.
// PRE: Window struct is populated
// POST: Returns nil and sets Minutes if valid, error otherwise
func (w *Window) Validate() error {
	if w.Date == "" {
		return ErrEmptyDate
	}
	if _, err := time.Parse(fatigue.DateLayout, w.Date); err != nil {
		return ErrInvalidDate
	}
	if w.Group == "" {
		return ErrEmptyGroup
	}
	minutes, err := Minutes(w.StartTime, w.EndTime)
	if err != nil {
		return err
	}
	w.Minutes = minutes
	return nil
}

// Minutes computes end - start in minutes-since-midnight from "HH:MM"
// strings. The result may be negative and is passed through unclamped.
func Minutes(start, end string) (int, error) {
	sh, sm, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	eh, em, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	return (eh*60 + em) - (sh*60 + sm), nil
}

func parseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return hour, minute, nil
}
