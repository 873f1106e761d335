package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/api/metrics"
	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// MessageCache abstracts the short-lived list cache (Redis) that absorbs
// the chat page's one-second polling.
type MessageCache interface {
	Get(ctx context.Context) ([]domain.Message, bool, error)
	Set(ctx context.Context, msgs []domain.Message) error
	Invalidate(ctx context.Context) error
}

// MessageService implements the chat board.
type MessageService struct {
	repo  ports.MessageRepository
	cache MessageCache
	log   zerolog.Logger
}

// NewMessageService returns a MessageService. cache may be nil, in which
// case every List call goes straight to the store.
func NewMessageService(repo ports.MessageRepository, cache MessageCache, log zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, cache: cache, log: log}
}

// Post appends one message to the board and drops the list cache.
func (s *MessageService) Post(ctx context.Context, input ports.PostMessageInput) (*domain.Message, error) {
	if err := validate.Username(input.Username); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, &validate.FieldError{Field: "message", Reason: "message cannot be empty"}
	}
	if len(input.Text) > domain.MaxMessageLength {
		return nil, &validate.FieldError{Field: "message", Reason: "message is too long (max 1000 characters)"}
	}
	if input.SentAt.IsZero() {
		return nil, &validate.FieldError{Field: "time", Reason: "time is required"}
	}

	message := &domain.Message{
		Username: strings.TrimSpace(input.Username),
		Text:     text,
		SentAt:   input.SentAt,
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to invalidate message cache")
		}
	}

	metrics.MessagesPostedTotal.Inc()
	return created, nil
}

// List returns the board oldest-first, serving from the cache when warm.
// Cache failures degrade to a direct store read.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	if s.cache != nil {
		msgs, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("message cache read failed, falling back to store")
		} else if hit {
			return msgs, nil
		}
	}

	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, msgs); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate message cache")
		}
	}
	return msgs, nil
}
