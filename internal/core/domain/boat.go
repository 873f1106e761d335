package domain

import "time"

// Reservation is a booking of a numbered mooring slot for a date range.
// Reservations are append-only: there is no cancel or update flow.
type Reservation struct {
	ID         string    `json:"id"`
	Slot       int       `json:"slot"`
	Address    string    `json:"address"`
	PostalCode int       `json:"postal_code"`
	City       string    `json:"city"`
	StartUse   time.Time `json:"start_use"`
	EndUse     time.Time `json:"end_use"`
	OwnerEmail string    `json:"owner_email"`
}

// Overlaps reports whether the reservation's closed interval intersects
// [start, end]. Both ends are inclusive, so a booking ending on the exact
// day another starts still counts as a conflict.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return !r.StartUse.After(end) && !r.EndUse.Before(start)
}
