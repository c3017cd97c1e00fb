package web

import (
	"net/http"

	"fatiguelog/internal/adapters/http/middleware"
	"fatiguelog/internal/domain/account"
)

// registerRoutes wires every handler onto the mux. Role checks happen here;
// handlers can assume a session with the right role is present.
func registerRoutes(mux *http.ServeMux) {
	requireAdmin := middleware.RequireRole(account.RoleAdmin)
	requireUser := middleware.RequireAuth

	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/signup", handleSignup)
	mux.HandleFunc("/confirm", handleConfirm)
	mux.HandleFunc("/logout", handleLogout)

	mux.Handle("/athlete", requireUser(http.HandlerFunc(handleAthlete)))
	mux.Handle("/athlete/records", requireUser(http.HandlerFunc(handleAthleteRecords)))

	mux.Handle("/admin", requireAdmin(http.HandlerFunc(handleAdmin)))
	mux.Handle("/admin/practice-times", requireAdmin(http.HandlerFunc(handleAdminPracticeTimes)))
	mux.Handle("/admin/teams", requireAdmin(http.HandlerFunc(handleAdminTeams)))
	mux.Handle("/admin/teams/delete", requireAdmin(http.HandlerFunc(handleAdminTeamsDelete)))
	mux.Handle("/admin/accounts", requireAdmin(http.HandlerFunc(handleAdminAccounts)))
	mux.Handle("/admin/accounts/update", requireAdmin(http.HandlerFunc(handleAdminAccountsUpdate)))
	mux.Handle("/admin/perf", requireAdmin(http.HandlerFunc(handleAdminPerf)))

	mux.Handle("/api/records/averages", requireUser(http.HandlerFunc(handleAPIAverages)))
	mux.Handle("/api/athlete/series", requireUser(http.HandlerFunc(handleAPISeries)))
}
