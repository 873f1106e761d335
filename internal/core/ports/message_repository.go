package ports

import (
	"context"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// MessageRepository defines persistence operations for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// List returns all messages ordered by sent time ascending.
	List(ctx context.Context) ([]domain.Message, error)
}
