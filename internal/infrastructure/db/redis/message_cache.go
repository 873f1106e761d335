package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

const (
	messagesKey = "cache:messages"
	// messagesTTL matches the chat page's poll interval: at one-second
	// polling, most reads hit the cache while a fresh post still shows
	// up on the next poll.
	messagesTTL = time.Second
)

// MessageCache is a short-lived Redis cache for the chat board listing.
type MessageCache struct {
	client *redis.Client
}

// NewMessageCache creates a MessageCache wrapping the given Redis client.
func NewMessageCache(client *redis.Client) *MessageCache {
	return &MessageCache{client: client}
}

// Get returns the cached listing and whether the cache was warm.
func (c *MessageCache) Get(ctx context.Context) ([]domain.Message, bool, error) {
	raw, err := c.client.Get(ctx, messagesKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("message cache get: %w", err)
	}

	var msgs []domain.Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, false, fmt.Errorf("message cache decode: %w", err)
	}
	return msgs, true, nil
}

// Set stores the listing with the short TTL.
func (c *MessageCache) Set(ctx context.Context, msgs []domain.Message) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("message cache encode: %w", err)
	}
	return c.client.Set(ctx, messagesKey, raw, messagesTTL).Err()
}

// Invalidate drops the cached listing after a new post.
func (c *MessageCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, messagesKey).Err()
}
