package domain

import "time"

// Record is a logged incident against a member. At most one record may
// exist per username and per email (unique indexes on both).
type Record struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`
}
