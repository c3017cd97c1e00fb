package orchestrators

import (
	"context"
	"log/slog"

	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/team"
)

// AccountStoreForUpdate defines the store interface needed by UpdateAccount.
type AccountStoreForUpdate interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// UpdateAccountInput carries input for the admin account-update orchestrator.
type UpdateAccountInput struct {
	AccountID string
	Role      string
	TeamCode  string // empty clears the assignment
}

// UpdateAccountDeps holds dependencies for UpdateAccount.
type UpdateAccountDeps struct {
	AccountStore AccountStoreForUpdate
	TeamStore    interface {
		GetByCode(ctx context.Context, code string) (team.Team, error)
	}
}

// ExecuteUpdateAccount changes an account's role and team assignment.
// The stored role column is the only source of authorization; changing it
// here takes effect on the account's next request.
// PRE: AccountID exists; Role is a valid role; TeamCode, when set, is an
// existing team code
// POST: Account saved with the new role and team
func ExecuteUpdateAccount(ctx context.Context, input UpdateAccountInput, deps UpdateAccountDeps) error {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	if input.TeamCode != "" {
		if _, err := deps.TeamStore.GetByCode(ctx, input.TeamCode); err != nil {
			return ErrUnknownGroup
		}
	}

	acct.Role = input.Role
	acct.TeamCode = input.TeamCode
	if err := acct.Validate(); err != nil {
		return err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "account_updated", "account_id", acct.ID, "role", acct.Role, "team", acct.TeamCode)
	return nil
}
