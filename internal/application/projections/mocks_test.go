package projections

import (
	"context"
	"errors"
	"sort"

	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	"fatiguelog/internal/domain/account"
	"fatiguelog/internal/domain/fatigue"
	"fatiguelog/internal/domain/practice"
	"fatiguelog/internal/domain/team"
)

// --- Mock fatigue store ---

type mockFatigueStore struct {
	records []fatigue.Record
}

// List applies the filter and returns records sorted by date ascending,
// matching the SQLite store's contract.
func (m *mockFatigueStore) List(_ context.Context, f fatigueStore.ListFilter) ([]fatigue.Record, error) {
	var out []fatigue.Record
	for _, r := range m.records {
		if f.AccountID != "" && r.AccountID != f.AccountID {
			continue
		}
		if f.Group != "" && r.Group != f.Group {
			continue
		}
		if f.Date != "" && r.Date != f.Date {
			continue
		}
		if f.FromDate != "" && r.Date < f.FromDate {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// --- Mock practice store ---

type mockPracticeStore struct {
	windows []practice.Window
}

func (m *mockPracticeStore) List(_ context.Context, f practiceStore.ListFilter) ([]practice.Window, error) {
	var out []practice.Window
	for _, w := range m.windows {
		if f.Group != "" && w.Group != f.Group {
			continue
		}
		if f.Date != "" && w.Date != f.Date {
			continue
		}
		if f.FromDate != "" && w.Date < f.FromDate {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// --- Mock team store ---

type mockTeamStore struct {
	teams []team.Team
}

func (m *mockTeamStore) List(_ context.Context) ([]team.Team, error) {
	return m.teams, nil
}

// --- Mock account store ---

type mockAccountStore struct {
	accounts map[string]account.Account
}

func (m *mockAccountStore) GetByID(_ context.Context, id string) (account.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return account.Account{}, errors.New("account not found")
	}
	return a, nil
}
