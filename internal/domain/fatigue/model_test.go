package fatigue_test

import (
	"testing"

	"fatiguelog/internal/domain/fatigue"
)

// TestRecord_Validate tests validation of fatigue records.
func TestRecord_Validate(t *testing.T) {
	valid := fatigue.Record{
		ID:        "1",
		Date:      "2026-03-01",
		Group:     "T1",
		Score:     5.5,
		AccountID: "acct-1",
	}

	tests := []struct {
		name    string
		mutate  func(r *fatigue.Record)
		wantErr error
	}{
		{"valid", func(r *fatigue.Record) {}, nil},
		{"zero score", func(r *fatigue.Record) { r.Score = 0 }, nil},
		{"max score", func(r *fatigue.Record) { r.Score = 10 }, nil},
		{"empty date", func(r *fatigue.Record) { r.Date = "" }, fatigue.ErrEmptyDate},
		{"bad date", func(r *fatigue.Record) { r.Date = "01/03/2026" }, fatigue.ErrInvalidDate},
		{"empty group", func(r *fatigue.Record) { r.Group = "" }, fatigue.ErrEmptyGroup},
		{"score below range", func(r *fatigue.Record) { r.Score = -0.1 }, fatigue.ErrScoreOutOfRange},
		{"score above range", func(r *fatigue.Record) { r.Score = 10.1 }, fatigue.ErrScoreOutOfRange},
		{"empty account", func(r *fatigue.Record) { r.AccountID = "" }, fatigue.ErrEmptyAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
