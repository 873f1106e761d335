package mongo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB
// connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database. A default timeout
// is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

const (
	healthFreshness   = 5 * time.Second
	healthPingTimeout = 2 * time.Second
)

// Health reports whether the MongoDB connection is currently established.
// A successful ping is cached for a short freshness window so the guard
// in front of every route does not turn the one-second chat poll into a
// ping storm; on expiry or failure the next check re-pings, which lets a
// dropped connection re-establish lazily.
type Health struct {
	client *mongo.Client

	mu     sync.Mutex
	lastOK time.Time
}

func NewHealth(client *mongo.Client) *Health {
	return &Health{client: client}
}

// Check returns nil when the connection is (recently) known to be live.
func (h *Health) Check(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if time.Since(h.lastOK) < healthFreshness {
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	h.lastOK = time.Now()
	return nil
}

// duplicateField names the field behind a unique-index violation by
// matching candidate field names against the server's error text (which
// embeds the index name, e.g. "username_1").
func duplicateField(err error, candidates ...string) string {
	msg := err.Error()
	for _, f := range candidates {
		if strings.Contains(msg, f) {
			return f
		}
	}
	return candidates[0]
}
