package domain

import "time"

// MaxTitleLength caps meeting titles.
const MaxTitleLength = 200

// Meeting is a scheduled club meeting. Any member may create one; admins
// toggle completion and delete old entries.
type Meeting struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	Agenda      string    `json:"agenda"`
	IsCompleted bool      `json:"is_completed"`
}
