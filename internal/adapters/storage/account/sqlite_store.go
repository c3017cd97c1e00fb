package account

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fatiguelog/internal/adapters/storage"
	domain "fatiguelog/internal/domain/account"
)

const accountColumns = "id, email, nickname, password_hash, role, team_code, status, created_at, failed_logins, locked_until"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AccountStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM account WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return entity, err
}

// GetByEmail retrieves an Account by email.
// PRE: email is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	query := "SELECT " + accountColumns + " FROM account WHERE email = ?"
	row := s.db.QueryRowContext(ctx, query, email)

	entity, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("account not found: %w", err)
	}
	return entity, err
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Account) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "email", "nickname", "password_hash", "role", "team_code", "status", "created_at", "failed_logins", "locked_until"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"email=excluded.email",
		"nickname=excluded.nickname",
		"password_hash=excluded.password_hash",
		"role=excluded.role",
		"team_code=excluded.team_code",
		"status=excluded.status",
		"failed_logins=excluded.failed_logins",
		"locked_until=excluded.locked_until",
	}

	query := fmt.Sprintf(
		"INSERT INTO account (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	var lockedUntil interface{}
	if !entity.LockedUntil.IsZero() {
		lockedUntil = entity.LockedUntil.Format(time.RFC3339Nano)
	}

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Email,
		entity.Nickname,
		entity.PasswordHash,
		entity.Role,
		entity.TeamCode,
		entity.Status,
		entity.CreatedAt.Format(time.RFC3339Nano),
		entity.FailedLogins,
		lockedUntil,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// List retrieves Accounts based on the filter.
// PRE: filter has valid parameters
// POST: Returns matching entities ordered by creation time
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Account, error) {
	var queryBuilder strings.Builder
	var args []interface{}
	var conds []string

	queryBuilder.WriteString("SELECT " + accountColumns + " FROM account")

	if filter.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, filter.Role)
	}
	if filter.TeamCode != "" {
		conds = append(conds, "team_code = ?")
		args = append(args, filter.TeamCode)
	}
	if len(conds) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at ASC")
	if filter.Limit > 0 {
		queryBuilder.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Account
	for rows.Next() {
		entity, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of accounts.
// PRE: none
// POST: Returns total account count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM account").Scan(&count)
	return count, err
}

// SaveConfirmationToken persists a confirmation token.
// PRE: token has a unique Token value
// POST: Token is persisted (insert or update of used flag)
func (s *SQLiteStore) SaveConfirmationToken(ctx context.Context, token domain.ConfirmationToken) error {
	query := `INSERT INTO confirmation_token (id, account_id, token, expires_at, used, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET used=excluded.used`
	used := 0
	if token.Used {
		used = 1
	}
	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		token.AccountID,
		token.Token,
		token.ExpiresAt.Format(time.RFC3339Nano),
		used,
		token.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// GetConfirmationToken retrieves a confirmation token by its token string.
// PRE: token is non-empty
// POST: Returns the token or an error if not found
func (s *SQLiteStore) GetConfirmationToken(ctx context.Context, token string) (domain.ConfirmationToken, error) {
	query := "SELECT id, account_id, token, expires_at, used, created_at FROM confirmation_token WHERE token = ?"
	row := s.db.QueryRowContext(ctx, query, token)

	var entity domain.ConfirmationToken
	var expiresAt, createdAt string
	var used int
	err := row.Scan(&entity.ID, &entity.AccountID, &entity.Token, &expiresAt, &used, &createdAt)
	if err == sql.ErrNoRows {
		return domain.ConfirmationToken{}, fmt.Errorf("confirmation token not found: %w", err)
	}
	if err != nil {
		return domain.ConfirmationToken{}, err
	}
	entity.Used = used != 0
	entity.ExpiresAt, _ = parseTime(expiresAt)
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

// scanAccount extracts an Account from a row scanner function.
func scanAccount(scan func(dest ...interface{}) error) (domain.Account, error) {
	var entity domain.Account
	var createdAt string
	var lockedUntil sql.NullString
	err := scan(
		&entity.ID,
		&entity.Email,
		&entity.Nickname,
		&entity.PasswordHash,
		&entity.Role,
		&entity.TeamCode,
		&entity.Status,
		&createdAt,
		&entity.FailedLogins,
		&lockedUntil,
	)
	if err != nil {
		return domain.Account{}, err
	}
	entity.CreatedAt, _ = parseTime(createdAt)
	if lockedUntil.Valid && lockedUntil.String != "" {
		entity.LockedUntil, _ = parseTime(lockedUntil.String)
	}
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
