package fatigue_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"fatiguelog/internal/adapters/storage"
	fatigueStore "fatiguelog/internal/adapters/storage/fatigue"
	domain "fatiguelog/internal/domain/fatigue"
)

func newStore(t *testing.T) *fatigueStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	// A pooled second connection would see a different in-memory database.
	db.SetMaxOpenConns(1)
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	// Records reference an account row via foreign key.
	_, err = db.Exec("INSERT INTO account (id, email, role, created_at) VALUES ('a1', 'a1@arca.fit', 'athlete', '2026-01-01T00:00:00Z'), ('a2', 'a2@arca.fit', 'athlete', '2026-01-01T00:00:00Z')")
	if err != nil {
		t.Fatalf("seed accounts: %v", err)
	}
	return fatigueStore.NewSQLiteStore(db)
}

// TestSQLiteStore_InsertAndList verifies inserts come back ordered by date
// and that filters narrow correctly.
func TestSQLiteStore_InsertAndList(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	records := []domain.Record{
		{ID: "r1", Date: "2026-03-02", Group: "T1", Score: 6.5, AccountID: "a1", DisplayName: "Riku", CreatedAt: time.Now()},
		{ID: "r2", Date: "2026-03-01", Group: "T1", Score: 4.0, AccountID: "a1", DisplayName: "Riku", CreatedAt: time.Now()},
		{ID: "r3", Date: "2026-03-01", Group: "S2", Score: 7.2, AccountID: "a2", DisplayName: "Mei", CreatedAt: time.Now()},
	}
	for _, r := range records {
		if err := store.Insert(ctx, r); err != nil {
			t.Fatalf("Insert(%s): %v", r.ID, err)
		}
	}

	all, err := store.List(ctx, fatigueStore.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].Date != "2026-03-01" || all[2].Date != "2026-03-02" {
		t.Fatalf("not ordered by date: %v, %v", all[0].Date, all[2].Date)
	}

	byAccount, err := store.List(ctx, fatigueStore.ListFilter{AccountID: "a1"})
	if err != nil {
		t.Fatalf("List by account: %v", err)
	}
	if len(byAccount) != 2 {
		t.Fatalf("account filter len = %d, want 2", len(byAccount))
	}

	byGroupDate, err := store.List(ctx, fatigueStore.ListFilter{Group: "S2", Date: "2026-03-01"})
	if err != nil {
		t.Fatalf("List by group+date: %v", err)
	}
	if len(byGroupDate) != 1 || byGroupDate[0].ID != "r3" {
		t.Fatalf("group+date filter = %v, want [r3]", byGroupDate)
	}

	fromDate, err := store.List(ctx, fatigueStore.ListFilter{FromDate: "2026-03-02"})
	if err != nil {
		t.Fatalf("List from date: %v", err)
	}
	if len(fromDate) != 1 || fromDate[0].ID != "r1" {
		t.Fatalf("from-date filter = %v, want [r1]", fromDate)
	}
}

// TestSQLiteStore_InsertDuplicateID verifies records are insert-only.
func TestSQLiteStore_InsertDuplicateID(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	r := domain.Record{ID: "r1", Date: "2026-03-01", Group: "T1", Score: 5, AccountID: "a1", CreatedAt: time.Now()}
	if err := store.Insert(ctx, r); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	r.Score = 9
	if err := store.Insert(ctx, r); err == nil {
		t.Fatal("second Insert with same ID succeeded, want constraint error")
	}
}
