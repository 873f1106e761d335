package domain

import "time"

// MaxMessageLength caps chat message text.
const MaxMessageLength = 1000

// Message is a chat board entry. Messages are append-only and read back
// ordered by SentAt ascending.
type Message struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}
