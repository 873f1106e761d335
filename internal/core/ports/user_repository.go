package ports

import (
	"context"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// UserRepository defines persistence operations for member accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListUsernames projects only the username field (member list page).
	ListUsernames(ctx context.Context) ([]string, error)
	// List returns all users for the admin panel. Password hashes are
	// still loaded but must never be serialized by callers.
	List(ctx context.Context) ([]*domain.User, error)
	// ToggleAdmin atomically flips is_admin on the user with the given id.
	ToggleAdmin(ctx context.Context, id string) (*domain.User, error)
}
