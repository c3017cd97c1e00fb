package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	emailAdapter "fatiguelog/internal/adapters/email"
	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/fatigue"
	"fatiguelog/internal/domain/practice"
	"fatiguelog/internal/domain/team"
)

// --- Mock account store ---

type mockAccountStore struct {
	accounts map[string]account.Account           // keyed by ID
	tokens   map[string]account.ConfirmationToken // keyed by token value
	saveErr  error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{
		accounts: make(map[string]account.Account),
		tokens:   make(map[string]account.ConfirmationToken),
	}
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return account.Account{}, errors.New("account not found")
	}
	return a, nil
}

func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, errors.New("account not found")
}

func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.accounts[a.ID] = a
	return nil
}

func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

func (m *mockAccountStore) SaveConfirmationToken(_ context.Context, t account.ConfirmationToken) error {
	m.tokens[t.Token] = t
	return nil
}

func (m *mockAccountStore) GetConfirmationToken(_ context.Context, token string) (account.ConfirmationToken, error) {
	t, ok := m.tokens[token]
	if !ok {
		return account.ConfirmationToken{}, errors.New("token not found")
	}
	return t, nil
}

// --- Mock team store ---

type mockTeamStore struct {
	teams map[string]team.Team // keyed by code
}

func newMockTeamStore(teams ...team.Team) *mockTeamStore {
	m := &mockTeamStore{teams: make(map[string]team.Team)}
	for _, t := range teams {
		m.teams[t.Code] = t
	}
	return m
}

func (m *mockTeamStore) GetByCode(_ context.Context, code string) (team.Team, error) {
	t, ok := m.teams[code]
	if !ok {
		return team.Team{}, errors.New("team not found")
	}
	return t, nil
}

func (m *mockTeamStore) Save(_ context.Context, t team.Team) error {
	m.teams[t.Code] = t
	return nil
}

func (m *mockTeamStore) Delete(_ context.Context, id string) error {
	for code, t := range m.teams {
		if t.ID == id {
			delete(m.teams, code)
			return nil
		}
	}
	return errors.New("team not found")
}

func (m *mockTeamStore) Count(_ context.Context) (int, error) {
	return len(m.teams), nil
}

// --- Mock fatigue store ---

type mockFatigueStore struct {
	records []fatigue.Record
}

func (m *mockFatigueStore) Insert(_ context.Context, r fatigue.Record) error {
	m.records = append(m.records, r)
	return nil
}

// --- Mock practice store ---

type mockPracticeStore struct {
	windows []practice.Window
}

func (m *mockPracticeStore) Insert(_ context.Context, w practice.Window) error {
	m.windows = append(m.windows, w)
	return nil
}

// --- Mock email sender ---

type mockEmailSender struct {
	sent     []emailAdapter.SendRequest
	failNext bool
}

func (m *mockEmailSender) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	if m.failNext {
		return emailAdapter.SendResult{}, errors.New("send failed")
	}
	m.sent = append(m.sent, req)
	return emailAdapter.SendResult{MessageID: "mock-msg-id", SentAt: fixedTime}, nil
}

// --- Shared test clock and ID generator ---

var fixedTime = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func testNow() time.Time {
	return fixedTime
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
