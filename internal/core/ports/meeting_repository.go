package ports

import (
	"context"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// MeetingRepository defines persistence operations for meetings.
type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	// List returns all meetings ordered by start time ascending.
	List(ctx context.Context) ([]*domain.Meeting, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}
