package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"fatiguelog/internal/domain/account"
)

// AccountStoreForConfirm defines the store interface needed by ConfirmAccount.
type AccountStoreForConfirm interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	GetConfirmationToken(ctx context.Context, token string) (account.ConfirmationToken, error)
	SaveConfirmationToken(ctx context.Context, t account.ConfirmationToken) error
}

// ConfirmAccountInput carries input for the confirmation orchestrator.
type ConfirmAccountInput struct {
	Token string
}

// ConfirmAccountDeps holds dependencies for ConfirmAccount.
type ConfirmAccountDeps struct {
	AccountStore AccountStoreForConfirm
	Now          func() time.Time
}

// ExecuteConfirmAccount activates a pending account from a confirmation link.
// PRE: Token matches a stored, unused, unexpired confirmation token
// POST: Account status is active; token is marked used
func ExecuteConfirmAccount(ctx context.Context, input ConfirmAccountInput, deps ConfirmAccountDeps) error {
	if input.Token == "" {
		return account.ErrTokenInvalid
	}

	token, err := deps.AccountStore.GetConfirmationToken(ctx, input.Token)
	if err != nil {
		return account.ErrTokenInvalid
	}
	if token.Used {
		return account.ErrTokenInvalid
	}
	if token.IsExpired(deps.Now()) {
		return account.ErrTokenExpired
	}

	acct, err := deps.AccountStore.GetByID(ctx, token.AccountID)
	if err != nil {
		return account.ErrTokenInvalid
	}
	if err := acct.Confirm(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	token.Invalidate()
	if err := deps.AccountStore.SaveConfirmationToken(ctx, token); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "account_confirmed", "email", acct.Email, "account_id", acct.ID)
	return nil
}
