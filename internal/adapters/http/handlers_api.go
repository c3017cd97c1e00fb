package web

import (
	"encoding/json"
	"net/http"

	"fatiguelog/internal/adapters/http/middleware"
	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	"fatiguelog/internal/application/projections"
)

// averageRow is the JSON shape consumed by the chart scripts.
type averageRow struct {
	Date    string  `json:"date"`
	Group   string  `json:"group"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// seriesPoint is one point of the athlete's own chart.
type seriesPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// handleAPIAverages handles GET /api/records/averages?group=: aggregated
// rows for the averages chart.
func handleAPIAverages(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	group := r.URL.Query().Get("group")
	if group == "all" {
		group = ""
	}
	records, err := stores.FatigueStore.List(r.Context(), fatigueStore.ListFilter{Group: group})
	if err != nil {
		internalError(w, err)
		return
	}

	rows := make([]averageRow, 0)
	for _, a := range projections.ComputeGroupAverages(records) {
		rows = append(rows, averageRow{Date: a.Date, Group: a.Group, Average: a.Average, Count: a.Count})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// handleAPISeries handles GET /api/athlete/series: the logged-in athlete's
// own (date, score) points in date order.
func handleAPISeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())

	records, err := stores.FatigueStore.List(r.Context(), fatigueStore.ListFilter{AccountID: sess.AccountID})
	if err != nil {
		internalError(w, err)
		return
	}

	points := make([]seriesPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, seriesPoint{Date: rec.Date, Score: rec.Score})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}
