package team

import (
	"errors"
	"strings"
)

// MaxCodeLength bounds the short group code ("T1", "S2", ...).
const MaxCodeLength = 8

// Domain errors
var (
	ErrEmptyName   = errors.New("team name cannot be empty")
	ErrEmptyCode   = errors.New("team code cannot be empty")
	ErrCodeTooLong = errors.New("team code cannot exceed 8 characters")
)

// Team represents a cohort of athletes. Code is the single authoritative
// group identifier: fatigue records and practice windows carry it, and the
// (date, code) pair is the join key between them.
type Team struct {
	ID   string
	Code string
	Name string
}

// Validate checks if the Team has valid data.
// PRE: Team struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Team) Validate() error {
	if strings.TrimSpace(t.Code) == "" {
		return ErrEmptyCode
	}
	if len(t.Code) > MaxCodeLength {
		return ErrCodeTooLong
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// DefaultTeams are the groups seeded on first startup.
var DefaultTeams = []Team{
	{Code: "T1", Name: "Track 1"},
	{Code: "T2", Name: "Track 2"},
	{Code: "S1", Name: "Sprint 1"},
	{Code: "S2", Name: "Sprint 2"},
	{Code: "R", Name: "Recovery"},
}
