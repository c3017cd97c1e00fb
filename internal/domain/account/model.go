package account

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Max length constants for user-editable fields.
const (
	MaxEmailLength    = 254
	MaxNicknameLength = 60
)

// Role constants
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleAthlete = "athlete"
)

// Account status constants
const (
	StatusActive              = "active"
	StatusPendingConfirmation = "pending_confirmation"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleStaff, RoleAthlete}

// Domain errors
var (
	ErrInvalidEmail     = errors.New("email must contain '@'")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidRole      = errors.New("role must be one of: admin, staff, athlete")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	ErrWrongPassword    = errors.New("incorrect password")
	ErrTokenExpired     = errors.New("confirmation link has expired")
	ErrTokenInvalid     = errors.New("confirmation token is invalid")
	ErrAlreadyConfirmed = errors.New("account is already confirmed")
	ErrNotPending       = errors.New("account is not pending confirmation")
)

// Account holds state for the Account concept.
// TeamCode is the athlete's group code (e.g. "T1"); empty until an admin
// assigns one.
type Account struct {
	ID           string
	Email        string
	Nickname     string
	PasswordHash string
	Role         string
	TeamCode     string
	Status       string // active, pending_confirmation
	CreatedAt    time.Time
	FailedLogins int
	LockedUntil  time.Time
}

// ConfirmationToken represents a time-limited token for confirming a
// freshly signed-up account via email.
type ConfirmationToken struct {
	ID        string
	AccountID string
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Validate checks if the Account has valid data.
// PRE: Account struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if len(a.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if len(a.Nickname) > MaxNicknameLength {
		return errors.New("nickname cannot exceed 60 characters")
	}
	if !isValidRole(a.Role) {
		return ErrInvalidRole
	}
	return nil
}

// DisplayName returns the name shown next to the account's fatigue records:
// the nickname when set, the email otherwise.
// INVARIANT: Account fields are not mutated
func (a *Account) DisplayName() string {
	if a.Nickname != "" {
		return a.Nickname
	}
	return a.Email
}

// SetPassword hashes and stores a password using bcrypt with cost 12.
// PRE: plaintext is non-empty and >= 12 characters
// POST: PasswordHash is set to bcrypt hash
func (a *Account) SetPassword(plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if len(plaintext) < 12 {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
// PRE: PasswordHash is set
// INVARIANT: Account fields are not mutated
func (a *Account) CheckPassword(plaintext string) error {
	if a.PasswordHash == "" {
		return ErrWrongPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plaintext))
	if err != nil {
		return ErrWrongPassword
	}
	return nil
}

// IsLocked returns true if the account is currently locked out.
// INVARIANT: Account fields are not mutated
func (a *Account) IsLocked() bool {
	if a.LockedUntil.IsZero() {
		return false
	}
	return time.Now().Before(a.LockedUntil)
}

// RecordFailedLogin increments the failed login counter and locks the account after 5 failures.
// PRE: Account exists
// POST: FailedLogins incremented; LockedUntil set if >= 5 failures
func (a *Account) RecordFailedLogin() {
	a.FailedLogins++
	if a.FailedLogins >= 5 {
		a.LockedUntil = time.Now().Add(15 * time.Minute)
	}
}

// ResetFailedLogins clears the failed login counter and lock.
// PRE: Account exists
// POST: FailedLogins is 0, LockedUntil is zero
func (a *Account) ResetFailedLogins() {
	a.FailedLogins = 0
	a.LockedUntil = time.Time{}
}

// IsAdmin returns true if the account has admin role.
// INVARIANT: Account fields are not mutated
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsPendingConfirmation returns true if the account has not confirmed its email yet.
// INVARIANT: Account fields are not mutated
func (a *Account) IsPendingConfirmation() bool {
	return a.Status == StatusPendingConfirmation
}

// Confirm transitions the account from pending to active.
// PRE: Account is in pending_confirmation status
// POST: Status is set to active
func (a *Account) Confirm() error {
	if a.Status == StatusActive {
		return ErrAlreadyConfirmed
	}
	if a.Status != StatusPendingConfirmation {
		return ErrNotPending
	}
	a.Status = StatusActive
	return nil
}

// IsExpired returns true if the confirmation token has expired.
// INVARIANT: Token fields are not mutated
func (t *ConfirmationToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Invalidate marks the token as used.
// PRE: Token exists
// POST: Used is set to true
func (t *ConfirmationToken) Invalidate() {
	t.Used = true
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
