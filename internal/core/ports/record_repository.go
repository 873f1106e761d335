package ports

import (
	"context"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// RecordRepository defines persistence operations for incident records.
type RecordRepository interface {
	Create(ctx context.Context, r *domain.Record) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
}
