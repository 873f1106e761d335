package ports

import (
	"context"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// CreateMeetingInput carries all data needed to schedule a meeting.
type CreateMeetingInput struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Agenda      string
	IsCompleted bool
}

// MeetingService defines use-case operations for meetings.
type MeetingService interface {
	Create(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error)
	List(ctx context.Context) ([]*domain.Meeting, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}
