package orchestrators

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	emailAdapter "fatiguelog/internal/adapters/email"
	"fatiguelog/internal/domain/account"
)

// ConfirmationTokenTTL is how long a confirmation link stays valid.
const ConfirmationTokenTTL = 72 * time.Hour

// AccountStoreForSignup defines the store interface needed by Signup.
type AccountStoreForSignup interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
	SaveConfirmationToken(ctx context.Context, t account.ConfirmationToken) error
}

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Email    string
	Password string
	Nickname string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	AccountStore AccountStoreForSignup
	EmailSender  emailAdapter.Sender
	GenerateID   func() string
	Now          func() time.Time
	BaseURL      string // e.g. "http://localhost:8080", used to build the confirmation link
	FromAddress  string
	ReplyTo      string
}

var ErrEmailAlreadyExists = errors.New("an account with this email already exists")

// ExecuteSignup creates a pending account and emails a confirmation link.
// New accounts always start as athletes; an admin promotes them later.
// PRE: Valid email, password >= 12 chars
// POST: Account saved with status pending_confirmation; token saved with 72h expiry;
// confirmation email sent
// INVARIANT: Email must be unique
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (string, error) {
	if input.Email == "" {
		return "", account.ErrEmptyEmail
	}
	if input.Password == "" {
		return "", account.ErrEmptyPassword
	}

	// Check if email already exists
	_, err := deps.AccountStore.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrEmailAlreadyExists
	}

	now := deps.Now()
	acct := account.Account{
		ID:        deps.GenerateID(),
		Email:     input.Email,
		Nickname:  input.Nickname,
		Role:      account.RoleAthlete,
		Status:    account.StatusPendingConfirmation,
		CreatedAt: now,
	}

	if err := acct.Validate(); err != nil {
		return "", err
	}
	if err := acct.SetPassword(input.Password); err != nil {
		return "", err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return "", err
	}

	tokenValue, err := generateToken()
	if err != nil {
		return "", err
	}
	token := account.ConfirmationToken{
		ID:        deps.GenerateID(),
		AccountID: acct.ID,
		Token:     tokenValue,
		ExpiresAt: now.Add(ConfirmationTokenTTL),
		CreatedAt: now,
	}
	if err := deps.AccountStore.SaveConfirmationToken(ctx, token); err != nil {
		return "", err
	}

	link := fmt.Sprintf("%s/confirm?token=%s", deps.BaseURL, tokenValue)
	_, err = deps.EmailSender.Send(ctx, emailAdapter.SendRequest{
		To:      acct.Email,
		From:    deps.FromAddress,
		Subject: "Confirm your Fatigue Log account",
		HTML:    confirmationBody(acct.DisplayName(), link),
		ReplyTo: deps.ReplyTo,
	})
	if err != nil {
		// The account exists but the email failed; the user can retry signup
		// once the pending account is cleaned up by an admin.
		slog.Error("auth_event", "event", "confirmation_email_failed", "email", acct.Email, "error", err)
		return "", err
	}

	slog.Info("auth_event", "event", "signup", "email", acct.Email, "account_id", acct.ID)
	return acct.ID, nil
}

func confirmationBody(name, link string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Welcome to Fatigue Log. Click the link below to confirm your account:</p>
<p><a href="%s">%s</a></p>
<p>The link expires in 72 hours. If you did not sign up, you can ignore this email.</p>`,
		name, link, link)
}

// generateToken returns a 64-char hex token from 32 random bytes.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate confirmation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
