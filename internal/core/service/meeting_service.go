package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// MeetingService implements meeting scheduling and completion tracking.
type MeetingService struct {
	repo ports.MeetingRepository
	log  zerolog.Logger
}

func NewMeetingService(repo ports.MeetingRepository, log zerolog.Logger) *MeetingService {
	return &MeetingService{repo: repo, log: log}
}

// Create schedules a meeting. All field checks run before any write, so a
// meeting with end before start is rejected without touching the store.
func (s *MeetingService) Create(ctx context.Context, input ports.CreateMeetingInput) (*domain.Meeting, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, &validate.FieldError{Field: "title", Reason: "title is required"}
	}
	if len(title) > domain.MaxTitleLength {
		return nil, &validate.FieldError{Field: "title", Reason: "title is too long (max 200 characters)"}
	}
	if err := validate.DateRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, &validate.FieldError{Field: "location", Reason: "location is required"}
	}
	if strings.TrimSpace(input.Agenda) == "" {
		return nil, &validate.FieldError{Field: "agenda", Reason: "agenda is required"}
	}

	meeting := &domain.Meeting{
		Title:       title,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    strings.TrimSpace(input.Location),
		Agenda:      strings.TrimSpace(input.Agenda),
		IsCompleted: input.IsCompleted,
	}

	created, err := s.repo.Create(ctx, meeting)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("title", created.Title).Time("start_time", created.StartTime).Msg("meeting created")
	return created, nil
}

func (s *MeetingService) List(ctx context.Context) ([]*domain.Meeting, error) {
	return s.repo.List(ctx)
}

func (s *MeetingService) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Meeting, error) {
	return s.repo.SetCompleted(ctx, id, completed)
}

func (s *MeetingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("meeting_id", id).Msg("meeting deleted")
	return nil
}
