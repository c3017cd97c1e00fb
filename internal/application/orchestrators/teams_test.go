package orchestrators

import (
	"context"
	"errors"
	"testing"

	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/team"
)

// TestCreateTeam_NormalizesCode tests creation with code trimming and uppercasing.
func TestCreateTeam_NormalizesCode(t *testing.T) {
	teams := newMockTeamStore()
	deps := TeamDeps{TeamStore: teams, GenerateID: sequentialIDs()}

	_, err := ExecuteCreateTeam(context.Background(), CreateTeamInput{Code: " m1 ", Name: "Marathon 1"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := teams.teams["M1"]; !ok {
		t.Errorf("team not stored under normalized code, have %v", teams.teams)
	}
}

// TestCreateTeam_DuplicateCode rejects an existing code.
func TestCreateTeam_DuplicateCode(t *testing.T) {
	teams := newMockTeamStore(team.Team{ID: "t1", Code: "T1", Name: "Track 1"})
	deps := TeamDeps{TeamStore: teams, GenerateID: sequentialIDs()}

	_, err := ExecuteCreateTeam(context.Background(), CreateTeamInput{Code: "T1", Name: "Other"}, deps)
	if !errors.Is(err, ErrTeamCodeExists) {
		t.Errorf("error = %v, want ErrTeamCodeExists", err)
	}
}

// TestCreateTeam_EmptyName rejects a blank name.
func TestCreateTeam_EmptyName(t *testing.T) {
	deps := TeamDeps{TeamStore: newMockTeamStore(), GenerateID: sequentialIDs()}

	_, err := ExecuteCreateTeam(context.Background(), CreateTeamInput{Code: "X1", Name: "  "}, deps)
	if !errors.Is(err, team.ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

// TestDeleteTeam_RemovesRow tests deletion by code.
func TestDeleteTeam_RemovesRow(t *testing.T) {
	teams := newMockTeamStore(team.Team{ID: "t1", Code: "T1", Name: "Track 1"})
	deps := TeamDeps{TeamStore: teams, GenerateID: sequentialIDs()}

	if err := ExecuteDeleteTeam(context.Background(), "T1", deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams.teams) != 0 {
		t.Errorf("team count = %d, want 0", len(teams.teams))
	}
}

// TestDeleteTeam_Unknown returns the store error for a missing code.
func TestDeleteTeam_Unknown(t *testing.T) {
	deps := TeamDeps{TeamStore: newMockTeamStore(), GenerateID: sequentialIDs()}
	if err := ExecuteDeleteTeam(context.Background(), "ZZ", deps); err == nil {
		t.Error("expected error for unknown team")
	}
}

// TestSeedTeams_EmptyStore seeds the default groups once.
func TestSeedTeams_EmptyStore(t *testing.T) {
	teams := newMockTeamStore()
	deps := TeamDeps{TeamStore: teams, GenerateID: sequentialIDs()}

	if err := ExecuteSeedTeams(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams.teams) != len(team.DefaultTeams) {
		t.Errorf("team count = %d, want %d", len(teams.teams), len(team.DefaultTeams))
	}

	// A second run must not duplicate
	if err := ExecuteSeedTeams(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams.teams) != len(team.DefaultTeams) {
		t.Errorf("team count after reseed = %d, want %d", len(teams.teams), len(team.DefaultTeams))
	}
}

// TestSeedAdmin_EmptyStore seeds an active admin account.
func TestSeedAdmin_EmptyStore(t *testing.T) {
	store := newMockAccountStore()
	deps := SeedAdminDeps{AccountStore: store, GenerateID: sequentialIDs(), Now: testNow}

	if err := ExecuteSeedAdmin(context.Background(), deps, "admin@club.example", "long-enough-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("account count = %d, want 1", len(store.accounts))
	}
	for _, a := range store.accounts {
		if a.Role != account.RoleAdmin {
			t.Errorf("role = %q, want admin", a.Role)
		}
		if a.Status != account.StatusActive {
			t.Errorf("status = %q, want active", a.Status)
		}
	}

	// Existing accounts block reseeding
	if err := ExecuteSeedAdmin(context.Background(), deps, "other@club.example", "long-enough-password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Errorf("account count after reseed = %d, want 1", len(store.accounts))
	}
}
