package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"

	"fatiguelog/internal/adapters/http/middleware"
	"fatiguelog/internal/application/orchestrators"
	accountDomain "fatiguelog/internal/domain/account"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

const templatesDir = "internal/adapters/http/templates"

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	nickname := ""
	if ok {
		role = sess.Role
		email = sess.Email
		nickname = sess.Nickname
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"currentName": func() string {
			if nickname != "" {
				return nickname
			}
			return email
		},
		"isLoggedIn": func() bool { return role != "" },
		"isAdmin":    func() bool { return role == accountDomain.RoleAdmin },
		"csrfToken":  func() string { return csrf.Token(r) },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleRoot routes by session: anonymous to /login, admins to /admin,
// everyone else to /athlete.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess, ok := middleware.GetSessionFromContext(r.Context())
	switch {
	case !ok:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case sess.Role == accountDomain.RoleAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/athlete", http.StatusSeeOther)
	}
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			redirectByRole(w, r, sess.Role)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}
		result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Nickname, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		middleware.SetSessionCookie(w, token)
		redirectByRole(w, r, result.Role)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func redirectByRole(w http.ResponseWriter, r *http.Request, role string) {
	if role == accountDomain.RoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/athlete", http.StatusSeeOther)
}

// handleSignup handles GET (form) and POST (create pending account) for /signup
func handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "signup.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		if r.FormValue("Password") != r.FormValue("ConfirmPassword") {
			renderTemplate(w, r, "signup.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     "Passwords do not match",
			})
			return
		}

		input := orchestrators.SignupInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
			Nickname: r.FormValue("Nickname"),
		}
		_, err := orchestrators.ExecuteSignup(r.Context(), input, orchestrators.SignupDeps{
			AccountStore: stores.AccountStore,
			EmailSender:  emailSender,
			GenerateID:   generateID,
			Now:          timeNow,
			BaseURL:      baseURL,
			FromAddress:  emailFromAddress,
			ReplyTo:      emailReplyTo,
		})
		if err != nil {
			renderTemplate(w, r, "signup.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		renderTemplate(w, r, "signup.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Sent":      true,
			"Email":     input.Email,
		})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleConfirm handles GET /confirm?token=
func handleConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	err := orchestrators.ExecuteConfirmAccount(r.Context(), orchestrators.ConfirmAccountInput{
		Token: r.URL.Query().Get("token"),
	}, orchestrators.ConfirmAccountDeps{
		AccountStore: stores.AccountStore,
		Now:          timeNow,
	})
	if err != nil {
		renderTemplate(w, r, "confirm.html", map[string]any{"Error": err.Error()})
		return
	}
	renderTemplate(w, r, "confirm.html", map[string]any{"Confirmed": true})
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookieName())
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
