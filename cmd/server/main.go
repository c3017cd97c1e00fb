package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	emailPkg "fatiguelog/internal/adapters/email"
	web "fatiguelog/internal/adapters/http"
	"fatiguelog/internal/adapters/http/perf"
	"fatiguelog/internal/adapters/storage"
	accountStore "fatiguelog/internal/adapters/storage/account"
	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	teamStore "fatiguelog/internal/adapters/storage/team"
	"fatiguelog/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dbPath := envOrDefault("FATIGUELOG_DB", "fatiguelog.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	tmStore := teamStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:  acctStore,
		TeamStore:     tmStore,
		FatigueStore:  fatigueStore.NewSQLiteStore(timedDB),
		PracticeStore: practiceStore.NewSQLiteStore(timedDB),
	}

	// Seed a default admin account if no accounts exist
	adminEmail := envOrDefault("FATIGUELOG_ADMIN_EMAIL", "admin@fatiguelog.local")
	adminPassword := envOrDefault("FATIGUELOG_ADMIN_PASSWORD", "change me before launch")
	seedDeps := orchestrators.SeedAdminDeps{
		AccountStore: acctStore,
		GenerateID:   newID,
		Now:          time.Now,
	}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed default teams if none exist
	teamDeps := orchestrators.TeamDeps{TeamStore: tmStore, GenerateID: newID}
	if err := orchestrators.ExecuteSeedTeams(context.Background(), teamDeps); err != nil {
		log.Fatalf("failed to seed teams: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("FATIGUELOG_RESEND_KEY")
	emailFrom := envOrDefault("FATIGUELOG_RESEND_FROM", "Fatigue Log <noreply@fatiguelog.local>")
	emailReply := envOrDefault("FATIGUELOG_REPLY_TO", "")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailReply)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailReply)
		if os.Getenv("FATIGUELOG_ENV") == "production" {
			log.Println("WARNING: FATIGUELOG_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set FATIGUELOG_RESEND_KEY for real delivery)")
		}
	}
	web.SetBaseURL(envOrDefault("FATIGUELOG_BASE_URL", "http://localhost:8080"))

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("FATIGUELOG_ADDR", ":8080")
	log.Printf("Fatigue Log %s starting on %s (env=%s)", version, addr, envOrDefault("FATIGUELOG_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newID() string {
	return uuid.New().String()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
