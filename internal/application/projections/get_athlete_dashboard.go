package projections

import (
	"context"
	"strconv"

	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	"fatiguelog/internal/domain/practice"
)

// PersonalPoint is one (date, score) point of an athlete's own series. Same
// day submissions stay separate points; no aggregation happens here.
type PersonalPoint struct {
	Date  string
	Score float64
}

// PracticeRow is a practice window joined with the same (date, group)
// fatigue average. AverageLabel is "-" when no records match.
type PracticeRow struct {
	Window       practice.Window
	Average      float64
	HasAverage   bool
	AverageLabel string
}

// GetAthleteDashboardQuery carries input for the athlete dashboard projection.
type GetAthleteDashboardQuery struct {
	AccountID string
}

// GetAthleteDashboardDeps holds dependencies for the athlete dashboard projection.
type GetAthleteDashboardDeps struct {
	FatigueStore  FatigueStore
	PracticeStore PracticeStore
	AccountStore  AccountStore
}

// AthleteDashboardResult carries the output of the athlete dashboard projection.
type AthleteDashboardResult struct {
	DisplayName    string
	CurrentGroup   string // group of the latest record, else the account's team
	PersonalSeries []PersonalPoint
	GroupAverages  []GroupAverage
	PracticeRows   []PracticeRow
}

// QueryGetAthleteDashboard builds the athlete page: the athlete's own score
// series, the averages for their current group, and that group's practice
// windows joined with same-date records.
func QueryGetAthleteDashboard(ctx context.Context, query GetAthleteDashboardQuery, deps GetAthleteDashboardDeps) (AthleteDashboardResult, error) {
	acct, err := deps.AccountStore.GetByID(ctx, query.AccountID)
	if err != nil {
		return AthleteDashboardResult{}, err
	}
	result := AthleteDashboardResult{
		DisplayName:  acct.DisplayName(),
		CurrentGroup: acct.TeamCode,
	}

	own, err := deps.FatigueStore.List(ctx, fatigueStore.ListFilter{AccountID: query.AccountID})
	if err != nil {
		return AthleteDashboardResult{}, err
	}
	for _, r := range own {
		result.PersonalSeries = append(result.PersonalSeries, PersonalPoint{Date: r.Date, Score: r.Score})
	}
	// The group of the most recent record wins over the account's assignment
	if len(own) > 0 {
		result.CurrentGroup = own[len(own)-1].Group
	}

	if result.CurrentGroup == "" {
		return result, nil
	}

	groupRecords, err := deps.FatigueStore.List(ctx, fatigueStore.ListFilter{Group: result.CurrentGroup})
	if err != nil {
		return AthleteDashboardResult{}, err
	}
	result.GroupAverages = ComputeGroupAverages(groupRecords)

	windows, err := deps.PracticeStore.List(ctx, practiceStore.ListFilter{Group: result.CurrentGroup})
	if err != nil {
		return AthleteDashboardResult{}, err
	}
	result.PracticeRows = joinWindows(windows, result.GroupAverages)

	return result, nil
}

// joinWindows pairs each practice window with the matching (date, group)
// average, labelling unmatched windows with "-".
func joinWindows(windows []practice.Window, averages []GroupAverage) []PracticeRow {
	byKey := make(map[string]GroupAverage, len(averages))
	for _, a := range averages {
		byKey[a.Date+"|"+a.Group] = a
	}

	rows := make([]PracticeRow, 0, len(windows))
	for _, w := range windows {
		row := PracticeRow{Window: w, AverageLabel: "-"}
		if a, ok := byKey[w.Date+"|"+w.Group]; ok {
			row.Average = a.Average
			row.HasAverage = true
			row.AverageLabel = strconv.FormatFloat(a.Average, 'f', 2, 64)
		}
		rows = append(rows, row)
	}
	return rows
}
