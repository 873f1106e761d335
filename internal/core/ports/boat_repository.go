package ports

import (
	"context"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// BoatRepository defines persistence operations for slot reservations.
type BoatRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	// CountOverlapping counts reservations on slot whose closed interval
	// intersects [start, end].
	CountOverlapping(ctx context.Context, slot int, start, end time.Time) (int64, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
}
