package projections

import (
	"context"
	"sort"
	"time"

	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	"fatiguelog/internal/domain/fatigue"
	"fatiguelog/internal/domain/practice"
	"fatiguelog/internal/domain/team"
)

// DaysFilterOptions are the accepted values for the recent-days table filter.
var DaysFilterOptions = []int{3, 5, 7, 10, 14}

// DefaultDaysFilter is used when the query carries no valid days value.
const DefaultDaysFilter = 7

// RecentCard is one of the cards for the most recent record dates: the
// date's records and averages plus any practice windows on that date.
type RecentCard struct {
	Date     string
	Averages []GroupAverage
	Windows  []practice.Window
}

// GetAdminDashboardQuery carries input for the admin dashboard projection.
type GetAdminDashboardQuery struct {
	Group string // team code, or empty / "all" for every group
	Days  int    // table window, one of DaysFilterOptions
	Today string // YYYY-MM-DD
}

// GetAdminDashboardDeps holds dependencies for the admin dashboard projection.
type GetAdminDashboardDeps struct {
	FatigueStore  FatigueStore
	PracticeStore PracticeStore
	TeamStore     TeamStore
}

// AdminDashboardResult carries the output of the admin dashboard projection.
type AdminDashboardResult struct {
	Teams         []team.Team
	Group         string // the applied filter, empty for all
	Days          int    // the applied days filter
	GroupAverages []GroupAverage
	RecentCards   []RecentCard
	TableRows     []PracticeRow
}

// QueryGetAdminDashboard builds the admin page: group averages, cards for
// the two most recent record dates, and the practice table over the last N
// days. The recent-card window is independent of the days filter.
func QueryGetAdminDashboard(ctx context.Context, query GetAdminDashboardQuery, deps GetAdminDashboardDeps) (AdminDashboardResult, error) {
	group := query.Group
	if group == "all" {
		group = ""
	}
	days := normalizeDays(query.Days)

	result := AdminDashboardResult{Group: group, Days: days}

	teams, err := deps.TeamStore.List(ctx)
	if err != nil {
		return AdminDashboardResult{}, err
	}
	result.Teams = teams

	records, err := deps.FatigueStore.List(ctx, fatigueStore.ListFilter{Group: group})
	if err != nil {
		return AdminDashboardResult{}, err
	}
	result.GroupAverages = ComputeGroupAverages(records)

	windows, err := deps.PracticeStore.List(ctx, practiceStore.ListFilter{Group: group})
	if err != nil {
		return AdminDashboardResult{}, err
	}

	result.RecentCards = buildRecentCards(records, windows, result.GroupAverages)

	cutoff, err := time.Parse(fatigue.DateLayout, query.Today)
	if err != nil {
		return AdminDashboardResult{}, err
	}
	from := cutoff.AddDate(0, 0, -days).Format(fatigue.DateLayout)

	recent, err := deps.PracticeStore.List(ctx, practiceStore.ListFilter{Group: group, FromDate: from})
	if err != nil {
		return AdminDashboardResult{}, err
	}
	result.TableRows = joinWindows(recent, result.GroupAverages)

	return result, nil
}

// buildRecentCards picks the 2 most recent distinct record dates, newest
// first, and collects each date's averages and practice windows.
func buildRecentCards(records []fatigue.Record, windows []practice.Window, averages []GroupAverage) []RecentCard {
	seen := make(map[string]bool)
	var dates []string
	for _, r := range records {
		if !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > 2 {
		dates = dates[:2]
	}

	cards := make([]RecentCard, 0, len(dates))
	for _, date := range dates {
		card := RecentCard{Date: date}
		for _, a := range averages {
			if a.Date == date {
				card.Averages = append(card.Averages, a)
			}
		}
		for _, w := range windows {
			if w.Date == date {
				card.Windows = append(card.Windows, w)
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// normalizeDays clamps the days filter to one of the accepted options.
func normalizeDays(days int) int {
	for _, d := range DaysFilterOptions {
		if days == d {
			return days
		}
	}
	return DefaultDaysFilter
}
