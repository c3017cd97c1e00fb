package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/csrf"

	"fatiguelog/internal/adapters/http/middleware"
	"fatiguelog/internal/application/orchestrators"
	"fatiguelog/internal/application/projections"
	"fatiguelog/internal/domain/fatigue"
)

// handleAthlete handles GET /athlete: fatigue form, personal series, group
// averages and practice windows for the athlete's current group.
func handleAthlete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())

	result, err := projections.QueryGetAthleteDashboard(r.Context(), projections.GetAthleteDashboardQuery{
		AccountID: sess.AccountID,
	}, projections.GetAthleteDashboardDeps{
		FatigueStore:  stores.FatigueStore,
		PracticeStore: stores.PracticeStore,
		AccountStore:  stores.AccountStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	teams, err := stores.TeamStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "athlete.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Dashboard": result,
		"Teams":     teams,
		"Today":     timeNow().Format(fatigue.DateLayout),
		"Error":     r.URL.Query().Get("error"),
		"Saved":     r.URL.Query().Get("saved") == "1",
	})
}

// handleAthleteRecords handles POST /athlete/records: insert a fatigue record.
func handleAthleteRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	score, err := strconv.ParseFloat(r.FormValue("Score"), 64)
	if err != nil {
		http.Redirect(w, r, "/athlete?error="+url.QueryEscape("score must be a number"), http.StatusSeeOther)
		return
	}

	input := orchestrators.RecordFatigueInput{
		AccountID: sess.AccountID,
		Date:      r.FormValue("Date"),
		Group:     r.FormValue("Group"),
		Score:     score,
	}
	_, err = orchestrators.ExecuteRecordFatigue(r.Context(), input, orchestrators.RecordFatigueDeps{
		FatigueStore: stores.FatigueStore,
		AccountStore: stores.AccountStore,
		TeamStore:    stores.TeamStore,
		GenerateID:   generateID,
		Now:          timeNow,
	})
	if err != nil {
		http.Redirect(w, r, "/athlete?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/athlete?saved=1", http.StatusSeeOther)
}
