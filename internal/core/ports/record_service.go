package ports

import (
	"context"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// CreateRecordInput carries one incident report.
type CreateRecordInput struct {
	Username string
	Email    string
	Date     time.Time
	Reason   string
}

// RecordService defines use-case operations for incident records.
type RecordService interface {
	// Create logs an incident. A second record for the same username or
	// email fails with a *domain.DuplicateError naming the field.
	Create(ctx context.Context, input CreateRecordInput) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
}
