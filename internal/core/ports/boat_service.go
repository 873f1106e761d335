package ports

import (
	"context"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// ReserveInput carries all data needed to book a mooring slot.
type ReserveInput struct {
	Slot       int
	Address    string
	PostalCode int
	City       string
	StartUse   time.Time
	EndUse     time.Time
	OwnerEmail string
}

// BoatService defines use-case operations for slot reservations.
type BoatService interface {
	// Reserve books the slot for [StartUse, EndUse] unless an existing
	// reservation on the same slot overlaps, in which case it fails with
	// a *domain.SlotConflictError.
	Reserve(ctx context.Context, input ReserveInput) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
}
