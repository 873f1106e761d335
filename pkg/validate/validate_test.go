package validate

import (
	"errors"
	"testing"
	"time"
)

func TestEmail(t *testing.T) {
	valid := []string{"a@b.no", "member@boatclub.example.com", " padded@club.no "}
	for _, s := range valid {
		if err := Email(s); err != nil {
			t.Fatalf("Email(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "@club.no", "two@@club.no", "space in@club.no"}
	for _, s := range invalid {
		if err := Email(s); err == nil {
			t.Fatalf("Email(%q) = nil, want error", s)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("12345678"); err != nil {
		t.Fatalf("8-char password rejected: %v", err)
	}
	if err := Password("1234567"); err == nil {
		t.Fatalf("7-char password accepted")
	}

	var fe *FieldError
	err := Password("")
	if !errors.As(err, &fe) || fe.Field != "password" {
		t.Fatalf("expected FieldError on password, got %v", err)
	}
}

func TestUsername(t *testing.T) {
	if err := Username("bob"); err != nil {
		t.Fatalf("3-char username rejected: %v", err)
	}
	if err := Username("ab"); err == nil {
		t.Fatalf("2-char username accepted")
	}
	if err := Username("  spaced  "); err != nil {
		t.Fatalf("trimmed username rejected: %v", err)
	}

	long := make([]byte, MaxUsernameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if err := Username(string(long)); err == nil {
		t.Fatalf("31-char username accepted")
	}
}

func TestPostalCode(t *testing.T) {
	for _, n := range []int{0, 42, 9999} {
		if err := PostalCode(n); err != nil {
			t.Fatalf("PostalCode(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, 10000} {
		if err := PostalCode(n); err == nil {
			t.Fatalf("PostalCode(%d) = nil, want error", n)
		}
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	if err := DateRange(start, end); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := DateRange(end, start); err == nil {
		t.Fatalf("reversed range accepted")
	}
	if err := DateRange(start, start); err == nil {
		t.Fatalf("zero-length range accepted")
	}
	if err := DateRange(time.Time{}, end); err == nil {
		t.Fatalf("missing start accepted")
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("start_use", "2025-06-01")
	if err != nil {
		t.Fatalf("plain date rejected: %v", err)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("start_use", "2025-06-01T12:30:00Z"); err != nil {
		t.Fatalf("RFC3339 date rejected: %v", err)
	}

	_, err = ParseDate("start_use", "june first")
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "start_use" {
		t.Fatalf("expected FieldError naming start_use, got %v", err)
	}
}
