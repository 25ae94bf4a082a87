package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/emre/eventra/internal/pkg/apperrors"
)

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2026-10-01T19:00:00Z")
	if err != nil {
		t.Fatalf("ParseTime RFC 3339: %v", err)
	}
	if got.Hour() != 19 {
		t.Errorf("hour = %d, want 19", got.Hour())
	}

	got, err = ParseTime("2026-10-01")
	if err != nil {
		t.Fatalf("ParseTime plain date: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.October {
		t.Errorf("unexpected date: %v", got)
	}

	_, err = ParseTime("next tuesday")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want a validation error", err)
	}
}

func TestParseOptionalTime(t *testing.T) {
	got, err := ParseOptionalTime(nil)
	if err != nil || got != nil {
		t.Fatalf("ParseOptionalTime(nil) = %v, %v, want nil, nil", got, err)
	}

	value := "2026-10-01"
	got, err = ParseOptionalTime(&value)
	if err != nil {
		t.Fatalf("ParseOptionalTime: %v", err)
	}
	if got == nil || got.Year() != 2026 {
		t.Errorf("unexpected result: %v", got)
	}

	bad := "nope"
	if _, err := ParseOptionalTime(&bad); err == nil {
		t.Error("invalid value parsed")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("45m", time.Hour); got != 45*time.Minute {
		t.Errorf("ParseDuration(45m) = %v, want 45m", got)
	}
	if got := ParseDuration("garbage", time.Hour); got != time.Hour {
		t.Errorf("fallback = %v, want 1h", got)
	}
	if got := ParseDuration("", 30*time.Minute); got != 30*time.Minute {
		t.Errorf("empty value fallback = %v, want 30m", got)
	}
}
