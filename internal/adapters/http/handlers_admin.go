package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/csrf"

	"fatiguelog/internal/adapters/http/middleware"
	accountStore "fatiguelog/internal/adapters/storage/account"
	"fatiguelog/internal/application/orchestrators"
	"fatiguelog/internal/application/projections"
	"fatiguelog/internal/domain/fatigue"
)

// handleAdmin handles GET /admin: practice window form, group averages,
// recent cards and the days-filtered table. Query params: group, days.
func handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	query := projections.GetAdminDashboardQuery{
		Group: r.URL.Query().Get("group"),
		Days:  days,
		Today: timeNow().Format(fatigue.DateLayout),
	}
	result, err := projections.QueryGetAdminDashboard(r.Context(), query, projections.GetAdminDashboardDeps{
		FatigueStore:  stores.FatigueStore,
		PracticeStore: stores.PracticeStore,
		TeamStore:     stores.TeamStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin.html", map[string]any{
		"CSRFToken":   csrf.Token(r),
		"Dashboard":   result,
		"DaysOptions": projections.DaysFilterOptions,
		"Today":       query.Today,
		"Error":       r.URL.Query().Get("error"),
		"Saved":       r.URL.Query().Get("saved") == "1",
	})
}

// handleAdminPracticeTimes handles POST /admin/practice-times.
func handleAdminPracticeTimes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, _ := middleware.GetSessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SavePracticeWindowInput{
		AccountID: sess.AccountID,
		Date:      r.FormValue("Date"),
		Group:     r.FormValue("Group"),
		StartTime: r.FormValue("StartTime"),
		EndTime:   r.FormValue("EndTime"),
	}
	_, err := orchestrators.ExecuteSavePracticeWindow(r.Context(), input, orchestrators.SavePracticeWindowDeps{
		PracticeStore: stores.PracticeStore,
		TeamStore:     stores.TeamStore,
		GenerateID:    generateID,
		Now:           timeNow,
	})
	if err != nil {
		http.Redirect(w, r, "/admin?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?saved=1", http.StatusSeeOther)
}

// handleAdminTeams handles GET (list + form) and POST (create) for /admin/teams.
func handleAdminTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		teams, err := stores.TeamStore.List(r.Context())
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "admin_teams.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Teams":     teams,
			"Error":     r.URL.Query().Get("error"),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input := orchestrators.CreateTeamInput{
			Code: r.FormValue("Code"),
			Name: r.FormValue("Name"),
		}
		_, err := orchestrators.ExecuteCreateTeam(r.Context(), input, orchestrators.TeamDeps{
			TeamStore:  stores.TeamStore,
			GenerateID: generateID,
		})
		if err != nil {
			http.Redirect(w, r, "/admin/teams?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/admin/teams", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminTeamsDelete handles POST /admin/teams/delete.
func handleAdminTeamsDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteDeleteTeam(r.Context(), r.FormValue("Code"), orchestrators.TeamDeps{
		TeamStore:  stores.TeamStore,
		GenerateID: generateID,
	})
	if err != nil {
		http.Redirect(w, r, "/admin/teams?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/teams", http.StatusSeeOther)
}

// handleAdminAccounts handles GET /admin/accounts: list accounts with
// role/team edit forms.
func handleAdminAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	accounts, err := stores.AccountStore.List(r.Context(), accountStore.ListFilter{})
	if err != nil {
		internalError(w, err)
		return
	}
	teams, err := stores.TeamStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin_accounts.html", map[string]any{
		"CSRFToken": csrf.Token(r),
		"Accounts":  accounts,
		"Teams":     teams,
		"Error":     r.URL.Query().Get("error"),
	})
}

// handleAdminAccountsUpdate handles POST /admin/accounts/update.
func handleAdminAccountsUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateAccountInput{
		AccountID: r.FormValue("AccountID"),
		Role:      r.FormValue("Role"),
		TeamCode:  r.FormValue("TeamCode"),
	}
	err := orchestrators.ExecuteUpdateAccount(r.Context(), input, orchestrators.UpdateAccountDeps{
		AccountStore: stores.AccountStore,
		TeamStore:    stores.TeamStore,
	})
	if err != nil {
		http.Redirect(w, r, "/admin/accounts?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/accounts", http.StatusSeeOther)
}

// handleAdminPerf handles GET /admin/perf: JSON snapshot of request and
// query timings from the in-process collector.
func handleAdminPerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collector disabled", http.StatusNotFound)
		return
	}

	since := timeNow().Add(-1 * time.Hour)
	snap := perfCollector.Snapshot(since, 10)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
