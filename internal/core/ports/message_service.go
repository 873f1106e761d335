package ports

import (
	"context"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// PostMessageInput carries one chat message.
type PostMessageInput struct {
	Username string
	Text     string
	SentAt   time.Time
}

// MessageService defines use-case operations for the chat board.
type MessageService interface {
	Post(ctx context.Context, input PostMessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
}
