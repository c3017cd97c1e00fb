package orchestrators

import (
	"context"
	"errors"
	"testing"

	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/team"
)

// TestUpdateAccount_ChangesRoleAndTeam tests the admin update path.
func TestUpdateAccount_ChangesRoleAndTeam(t *testing.T) {
	accounts := newMockAccountStore()
	accounts.accounts["a1"] = account.Account{ID: "a1", Email: "r@club.example", Role: account.RoleAthlete}
	teams := newMockTeamStore(team.Team{ID: "t1", Code: "T1", Name: "Track 1"})

	err := ExecuteUpdateAccount(context.Background(), UpdateAccountInput{
		AccountID: "a1",
		Role:      account.RoleStaff,
		TeamCode:  "T1",
	}, UpdateAccountDeps{AccountStore: accounts, TeamStore: teams})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := accounts.accounts["a1"]
	if got.Role != account.RoleStaff {
		t.Errorf("role = %q, want staff", got.Role)
	}
	if got.TeamCode != "T1" {
		t.Errorf("team code = %q, want T1", got.TeamCode)
	}
}

// TestUpdateAccount_ClearsTeam allows removing a team assignment.
func TestUpdateAccount_ClearsTeam(t *testing.T) {
	accounts := newMockAccountStore()
	accounts.accounts["a1"] = account.Account{ID: "a1", Email: "r@club.example", Role: account.RoleAthlete, TeamCode: "T1"}

	err := ExecuteUpdateAccount(context.Background(), UpdateAccountInput{
		AccountID: "a1",
		Role:      account.RoleAthlete,
		TeamCode:  "",
	}, UpdateAccountDeps{AccountStore: accounts, TeamStore: newMockTeamStore()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := accounts.accounts["a1"].TeamCode; got != "" {
		t.Errorf("team code = %q, want empty", got)
	}
}

// TestUpdateAccount_InvalidRole rejects unknown roles.
func TestUpdateAccount_InvalidRole(t *testing.T) {
	accounts := newMockAccountStore()
	accounts.accounts["a1"] = account.Account{ID: "a1", Email: "r@club.example", Role: account.RoleAthlete}

	err := ExecuteUpdateAccount(context.Background(), UpdateAccountInput{
		AccountID: "a1",
		Role:      "superuser",
	}, UpdateAccountDeps{AccountStore: accounts, TeamStore: newMockTeamStore()})
	if !errors.Is(err, account.ErrInvalidRole) {
		t.Errorf("error = %v, want ErrInvalidRole", err)
	}
}

// TestUpdateAccount_UnknownTeam rejects team codes with no team.
func TestUpdateAccount_UnknownTeam(t *testing.T) {
	accounts := newMockAccountStore()
	accounts.accounts["a1"] = account.Account{ID: "a1", Email: "r@club.example", Role: account.RoleAthlete}

	err := ExecuteUpdateAccount(context.Background(), UpdateAccountInput{
		AccountID: "a1",
		Role:      account.RoleAthlete,
		TeamCode:  "ZZ",
	}, UpdateAccountDeps{AccountStore: accounts, TeamStore: newMockTeamStore()})
	if !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("error = %v, want ErrUnknownGroup", err)
	}
}
