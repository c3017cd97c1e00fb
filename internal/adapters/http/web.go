package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"fatiguelog/internal/adapters/email"
	"fatiguelog/internal/adapters/http/middleware"
	"fatiguelog/internal/adapters/http/perf"
	accountStore "fatiguelog/internal/adapters/storage/account"
	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	practiceStore "fatiguelog/internal/adapters/storage/practice"
	teamStore "fatiguelog/internal/adapters/storage/team"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore  accountStore.Store
	TeamStore     teamStore.Store
	FatigueStore  fatigueStore.Store
	PracticeStore practiceStore.Store
}

// loadCSRFKey reads the CSRF secret from FATIGUELOG_CSRF_KEY (hex-encoded,
// 32 bytes). In production the key MUST be set; in development a random key
// is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FATIGUELOG_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FATIGUELOG_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FATIGUELOG_ENV") == "production" {
		log.Fatal("FATIGUELOG_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set FATIGUELOG_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender = email.NewNoopSender()

// Email and link configuration
var emailFromAddress string
var emailReplyTo string
var baseURL = "http://localhost:8080"

// SetEmailSender sets the email sender used for confirmation emails.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// SetBaseURL sets the public base URL used in confirmation links.
func SetBaseURL(url string) {
	baseURL = url
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("FATIGUELOG_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
