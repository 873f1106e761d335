// Package validate holds the pure field validators shared by all route
// groups. Every function is stateless and side-effect free: it either
// returns nil or a *FieldError carrying the offending field and a
// human-readable reason.
package validate

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MaxPostalCode     = 9999
)

// emailPattern accepts the simple local@domain.tld shape; it is not an
// RFC 5322 parser and is not meant to be.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError describes why a single field failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

func fail(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// Email validates the local@domain.tld shape after trimming.
func Email(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fail("email", "email is required")
	}
	if !emailPattern.MatchString(s) {
		return fail("email", "email address is not valid")
	}
	return nil
}

// Password enforces the minimum length. No character-class requirements.
func Password(s string) error {
	if s == "" {
		return fail("password", "password is required")
	}
	if len(s) < MinPasswordLength {
		return fail("password", "password must be at least 8 characters")
	}
	return nil
}

// Username enforces the 3-30 character bound after trimming.
func Username(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fail("username", "username is required")
	}
	if len(s) < MinUsernameLength {
		return fail("username", "username must be at least 3 characters")
	}
	if len(s) > MaxUsernameLength {
		return fail("username", "username must be at most 30 characters")
	}
	return nil
}

// PostalCode accepts integers in [0, 9999].
func PostalCode(n int) error {
	if n < 0 || n > MaxPostalCode {
		return fail("postal_code", "postal code must be between 0 and 9999")
	}
	return nil
}

// DateRange requires both dates to be set and start to be strictly
// before end.
func DateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fail("date_range", "start and end dates are required")
	}
	if !start.Before(end) {
		return fail("date_range", "start date must be before end date")
	}
	return nil
}

// dateLayouts are tried in order by ParseDate. The polling client sends
// plain date inputs; API callers may send full RFC 3339 timestamps.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate parses a calendar date or timestamp from the wire.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fail(field, field+" is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fail(field, field+" is not a valid date")
}
