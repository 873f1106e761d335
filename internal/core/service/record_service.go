package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// RecordService implements the incident log.
type RecordService struct {
	repo ports.RecordRepository
	log  zerolog.Logger
}

func NewRecordService(repo ports.RecordRepository, log zerolog.Logger) *RecordService {
	return &RecordService{repo: repo, log: log}
}

// Create logs an incident. Uniqueness on both username and email is
// enforced by the store; at most one record exists per person.
func (s *RecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.Record, error) {
	if err := validate.Username(input.Username); err != nil {
		return nil, err
	}
	if err := validate.Email(input.Email); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, &validate.FieldError{Field: "date", Reason: "date is required"}
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, &validate.FieldError{Field: "reason", Reason: "reason is required"}
	}

	record := &domain.Record{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Date:     input.Date,
		Reason:   strings.TrimSpace(input.Reason),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("incident recorded")
	return created, nil
}

func (s *RecordService) List(ctx context.Context) ([]*domain.Record, error) {
	return s.repo.List(ctx)
}
