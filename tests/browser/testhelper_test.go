package browser_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	_ "modernc.org/sqlite"

	web "fatiguelog/internal/adapters/http"
	"fatiguelog/internal/adapters/http/middleware"
	"fatiguelog/internal/adapters/http/perf"
	"fatiguelog/internal/adapters/storage"
	accountStore "fatiguelog/internal/adapters/storage/account"
	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	teamStore "fatiguelog/internal/adapters/storage/team"
	"fatiguelog/internal/application/orchestrators"
	"fatiguelog/internal/domain/account"
)

const (
	adminEmail      = "admin@test.local"
	adminPassword   = "TestAdminPass123!"
	athleteEmail    = "athlete@test.local"
	athletePassword = "TestAthletePass1!"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL   string
	DB        *sql.DB
	Server    *http.Server
	PW        *playwright.Playwright
	Browser   playwright.Browser
	Stores    *web.Stores
	AthleteID string
}

// newTestApp creates a fully wired app with a temp SQLite DB and starts an HTTP server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to initialize test DB: %v", err)
	}

	acctStore := accountStore.NewSQLiteStore(db)
	tmStore := teamStore.NewSQLiteStore(db)
	stores := &web.Stores{
		AccountStore:  acctStore,
		TeamStore:     tmStore,
		FatigueStore:  fatigueStore.NewSQLiteStore(db),
		PracticeStore: practiceStore.NewSQLiteStore(db),
	}

	ctx := context.Background()
	newID := func() string { return uuid.New().String() }

	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore, GenerateID: newID, Now: time.Now}
	if err := orchestrators.ExecuteSeedAdmin(ctx, seedDeps, adminEmail, adminPassword); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	teamDeps := orchestrators.TeamDeps{TeamStore: tmStore, GenerateID: newID}
	if err := orchestrators.ExecuteSeedTeams(ctx, teamDeps); err != nil {
		t.Fatalf("failed to seed teams: %v", err)
	}

	// An already-active athlete so login tests skip the confirmation flow
	athlete := account.Account{
		ID:        newID(),
		Email:     athleteEmail,
		Nickname:  "Testy",
		Role:      account.RoleAthlete,
		Status:    account.StatusActive,
		CreatedAt: time.Now(),
	}
	if err := athlete.SetPassword(athletePassword); err != nil {
		t.Fatalf("failed to set athlete password: %v", err)
	}
	if err := acctStore.Save(ctx, athlete); err != nil {
		t.Fatalf("failed to save athlete: %v", err)
	}

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	collector := perf.NewCollector(perf.DefaultRingSize)
	mux := web.NewMux("static", stores, collector)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/login")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL:   baseURL,
		DB:        db,
		Server:    srv,
		PW:        pw,
		Browser:   browser,
		Stores:    stores,
		AthleteID: athlete.ID,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login logs in through the form and waits for the role landing page.
func (a *testApp) login(t *testing.T, page playwright.Page, email, password, landing string) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/login"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=Email]").Fill(email); err != nil {
		t.Fatalf("failed to fill email: %v", err)
	}
	if err := page.Locator("input[name=Password]").Fill(password); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("form button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+landing, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to %s: %v", landing, err)
	}
}

func (a *testApp) loginAdmin(t *testing.T, page playwright.Page) {
	a.login(t, page, adminEmail, adminPassword, "/admin")
}

func (a *testApp) loginAthlete(t *testing.T, page playwright.Page) {
	a.login(t, page, athleteEmail, athletePassword, "/athlete")
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
