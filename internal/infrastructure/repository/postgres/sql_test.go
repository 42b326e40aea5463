package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get player: %w", sql.ErrNoRows)) {
			t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation players does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullConversions(t *testing.T) {
	if got := nullIntToPtr(sql.NullInt64{Int64: 7, Valid: true}); got == nil || *got != 7 {
		t.Fatalf("unexpected int conversion: %v", got)
	}
	if got := nullIntToPtr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil for invalid int, got %v", *got)
	}
	if got := nullFloatToPtr(sql.NullFloat64{Float64: 1.5, Valid: true}); got == nil || *got != 1.5 {
		t.Fatalf("unexpected float conversion: %v", got)
	}
	if got := nullStringValue(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOptionalString(t *testing.T) {
	if got := optionalString("   "); got != nil {
		t.Fatalf("expected nil for blank string, got %v", got)
	}
	if got := optionalString(" Duke "); got != "Duke" {
		t.Fatalf("expected trimmed value, got %v", got)
	}
}

func TestNormalizeRowValue(t *testing.T) {
	if got := normalizeRowValue([]byte("BOS")); got != "BOS" {
		t.Fatalf("expected string conversion, got %#v", got)
	}
	if got := normalizeRowValue(int64(3)); got != int64(3) {
		t.Fatalf("expected passthrough, got %#v", got)
	}
}

func TestPrefixPattern(t *testing.T) {
	if got := prefixPattern("LeB"); got != "LeB%" {
		t.Fatalf("unexpected pattern: %s", got)
	}
	if got := prefixPattern("50%_"); got != `50\%\_%` {
		t.Fatalf("unexpected escaped pattern: %s", got)
	}
}
