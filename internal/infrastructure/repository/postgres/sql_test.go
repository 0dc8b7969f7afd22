package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if isNotFound(fmt.Errorf("connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "bets_user_id_match_id_key"}
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("matches wrapped error", func(t *testing.T) {
		err := fmt.Errorf("insert bet: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for wrapped unique violation")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		err := &pq.Error{Code: "23514"}
		if isUniqueViolation(err) {
			t.Fatalf("expected false for check constraint violation")
		}
	})

	t.Run("ignores non-pq errors", func(t *testing.T) {
		if isUniqueViolation(fmt.Errorf("boom")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullHelpers(t *testing.T) {
	t.Run("null int64", func(t *testing.T) {
		if got := nullInt64ToInt64Ptr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil for null, got %v", got)
		}
		got := nullInt64ToInt64Ptr(sql.NullInt64{Int64: 57451, Valid: true})
		if got == nil || *got != 57451 {
			t.Fatalf("expected 57451, got %v", got)
		}
	})

	t.Run("null string", func(t *testing.T) {
		if got := nullStringToStringPtr(sql.NullString{}); got != nil {
			t.Fatalf("expected nil for null, got %v", got)
		}
		got := nullStringToStringPtr(sql.NullString{String: "GER", Valid: true})
		if got == nil || *got != "GER" {
			t.Fatalf("expected GER, got %v", got)
		}
	})

	t.Run("null time", func(t *testing.T) {
		if got := nullTimeToTimePtr(sql.NullTime{}); got != nil {
			t.Fatalf("expected nil for null, got %v", got)
		}
		when := time.Date(2026, 6, 20, 21, 0, 0, 0, time.UTC)
		got := nullTimeToTimePtr(sql.NullTime{Time: when, Valid: true})
		if got == nil || !got.Equal(when) {
			t.Fatalf("expected %v, got %v", when, got)
		}
	})
}
