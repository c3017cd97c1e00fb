package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fatiguelog/internal/domain/team"
)

// TeamStoreForAdmin defines the store interface needed by team management.
type TeamStoreForAdmin interface {
	GetByCode(ctx context.Context, code string) (team.Team, error)
	Save(ctx context.Context, t team.Team) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// CreateTeamInput carries input for the create-team orchestrator.
type CreateTeamInput struct {
	Code string
	Name string
}

// TeamDeps holds dependencies for team orchestrators.
type TeamDeps struct {
	TeamStore  TeamStoreForAdmin
	GenerateID func() string
}

var ErrTeamCodeExists = errors.New("a team with this code already exists")

// ExecuteCreateTeam creates a new team.
// PRE: Code is non-empty and unique; Name is non-empty
// POST: Team saved
func ExecuteCreateTeam(ctx context.Context, input CreateTeamInput, deps TeamDeps) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))

	if _, err := deps.TeamStore.GetByCode(ctx, code); err == nil {
		return "", ErrTeamCodeExists
	}

	t := team.Team{
		ID:   deps.GenerateID(),
		Code: code,
		Name: strings.TrimSpace(input.Name),
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	if err := deps.TeamStore.Save(ctx, t); err != nil {
		return "", err
	}

	slog.Info("team_event", "event", "team_created", "code", t.Code, "name", t.Name)
	return t.ID, nil
}

// ExecuteDeleteTeam removes a team by code. Existing fatigue records and
// practice windows keep the code; their (date, group) pairs simply stop
// matching any team.
// PRE: Code refers to an existing team
// POST: Team row deleted; no cascade
func ExecuteDeleteTeam(ctx context.Context, code string, deps TeamDeps) error {
	t, err := deps.TeamStore.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if err := deps.TeamStore.Delete(ctx, t.ID); err != nil {
		return err
	}

	slog.Info("team_event", "event", "team_deleted", "code", t.Code)
	return nil
}

// ExecuteSeedTeams creates the default teams when none exist.
// PRE: Database is initialized
// POST: Default teams created if count == 0
func ExecuteSeedTeams(ctx context.Context, deps TeamDeps) error {
	count, err := deps.TeamStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Teams already exist, skip seeding
	}

	for _, t := range team.DefaultTeams {
		seeded := t
		seeded.ID = deps.GenerateID()
		if err := deps.TeamStore.Save(ctx, seeded); err != nil {
			return err
		}
	}

	slog.Info("team_event", "event", "teams_seeded", "count", len(team.DefaultTeams))
	return nil
}
