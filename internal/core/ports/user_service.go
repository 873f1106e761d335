package ports

import (
	"context"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// CreateUserInput carries one signup candidate.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// BulkItemResult reports one successfully created user in a batch.
type BulkItemResult struct {
	Index    int    `json:"index"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BulkItemError reports one rejected candidate in a batch.
type BulkItemError struct {
	Index    int    `json:"index"`
	Username string `json:"username"`
	Reason   string `json:"error"`
}

// BulkCreateResult aggregates a partial-success batch. Counts are part of
// the client contract.
type BulkCreateResult struct {
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Results []BulkItemResult `json:"results"`
	Errors  []BulkItemError  `json:"errors"`
}

// UserService defines use-case operations for member accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// CreateMany validates and persists each candidate independently and
	// never aborts the whole batch on one bad entry.
	CreateMany(ctx context.Context, inputs []CreateUserInput) (*BulkCreateResult, error)
	// Login verifies credentials and returns the role flag. Failures are
	// uniform: callers cannot distinguish a missing user from a wrong
	// password.
	Login(ctx context.Context, username, password string) (isAdmin bool, err error)
	ListUsernames(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]*domain.User, error)
	ToggleAdmin(ctx context.Context, id string) (*domain.User, error)
}
