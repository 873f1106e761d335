package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

type stubMessageRepo struct {
	messages  []domain.Message
	listCalls int
}

func (r *stubMessageRepo) Create(_ context.Context, m *domain.Message) (*domain.Message, error) {
	clone := *m
	clone.ID = fmt.Sprintf("msg_%d", len(r.messages)+1)
	r.messages = append(r.messages, clone)
	out := clone
	return &out, nil
}

func (r *stubMessageRepo) List(_ context.Context) ([]domain.Message, error) {
	r.listCalls++
	out := make([]domain.Message, len(r.messages))
	copy(out, r.messages)
	return out, nil
}

type stubMessageCache struct {
	cached      []domain.Message
	warm        bool
	getErr      error
	invalidated int
	sets        int
}

func (c *stubMessageCache) Get(_ context.Context) ([]domain.Message, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if !c.warm {
		return nil, false, nil
	}
	out := make([]domain.Message, len(c.cached))
	copy(out, c.cached)
	return out, true, nil
}

func (c *stubMessageCache) Set(_ context.Context, msgs []domain.Message) error {
	c.cached = make([]domain.Message, len(msgs))
	copy(c.cached, msgs)
	c.warm = true
	c.sets++
	return nil
}

func (c *stubMessageCache) Invalidate(_ context.Context) error {
	c.cached = nil
	c.warm = false
	c.invalidated++
	return nil
}

func validMessageInput() ports.PostMessageInput {
	return ports.PostMessageInput{
		Username: "alice",
		Text:     "Anyone sailing this weekend?",
		SentAt:   time.Date(2026, 6, 5, 12, 30, 0, 0, time.UTC),
	}
}

func TestMessageService_Post_Success(t *testing.T) {
	repo := &stubMessageRepo{}
	cache := &stubMessageCache{}
	svc := NewMessageService(repo, cache, zerolog.Nop())

	msg, err := svc.Post(context.Background(), validMessageInput())
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if msg.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation after post, got %d", cache.invalidated)
	}
}

func TestMessageService_Post_TooLong(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	input := validMessageInput()
	input.Text = strings.Repeat("a", domain.MaxMessageLength+1)

	_, err := svc.Post(context.Background(), input)
	var fieldErr *validate.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "message" {
		t.Fatalf("expected message FieldError, got %v", err)
	}
	if len(repo.messages) != 0 {
		t.Fatalf("rejected message must not be persisted")
	}
}

func TestMessageService_Post_MissingFields(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	cases := []struct {
		name   string
		mutate func(*ports.PostMessageInput)
		field  string
	}{
		{"missing username", func(in *ports.PostMessageInput) { in.Username = "" }, "username"},
		{"empty text", func(in *ports.PostMessageInput) { in.Text = "   " }, "message"},
		{"missing time", func(in *ports.PostMessageInput) { in.SentAt = time.Time{} }, "time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validMessageInput()
			tc.mutate(&input)

			_, err := svc.Post(context.Background(), input)
			var fieldErr *validate.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tc.field {
				t.Fatalf("expected %s FieldError, got %v", tc.field, err)
			}
		})
	}
}

func TestMessageService_List_CacheHit(t *testing.T) {
	repo := &stubMessageRepo{}
	cache := &stubMessageCache{
		warm:   true,
		cached: []domain.Message{{ID: "msg_1", Username: "alice", Text: "hello"}},
	}
	svc := NewMessageService(repo, cache, zerolog.Nop())

	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "msg_1" {
		t.Fatalf("unexpected cached listing: %+v", msgs)
	}
	if repo.listCalls != 0 {
		t.Fatalf("warm cache must not hit the store")
	}
}

func TestMessageService_List_CacheMissPopulates(t *testing.T) {
	repo := &stubMessageRepo{}
	cache := &stubMessageCache{}
	svc := NewMessageService(repo, cache, zerolog.Nop())

	if _, err := svc.Post(context.Background(), validMessageInput()); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if repo.listCalls != 1 {
		t.Fatalf("cold cache must read the store once, got %d calls", repo.listCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be populated after miss")
	}
}

func TestMessageService_List_CacheErrorFallsBack(t *testing.T) {
	repo := &stubMessageRepo{}
	cache := &stubMessageCache{getErr: errors.New("connection refused")}
	svc := NewMessageService(repo, cache, zerolog.Nop())

	if _, err := svc.Post(context.Background(), validMessageInput()); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not surface to callers, got %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected listing from the store, got %+v", msgs)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected fallback store read")
	}
}

func TestMessageService_NilCache(t *testing.T) {
	repo := &stubMessageRepo{}
	svc := NewMessageService(repo, nil, zerolog.Nop())

	if _, err := svc.Post(context.Background(), validMessageInput()); err != nil {
		t.Fatalf("post without cache failed: %v", err)
	}
	msgs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list without cache failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
}
