package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is at the HTTP boundary.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMalformedID         = errors.New("invalid id format")
	ErrDatabaseUnavailable = errors.New("database connection not available")
)

// DuplicateError reports a uniqueness violation on a single field
// (username, email). The field name is part of the client contract.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already exists"
}

// SlotConflictError reports that a requested booking interval overlaps an
// existing reservation on the same slot.
type SlotConflictError struct {
	Slot int
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %d is already reserved for an overlapping period", e.Slot)
}
