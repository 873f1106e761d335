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

// BoatService implements slot reservation with overlap rejection.
type BoatService struct {
	repo ports.BoatRepository
	log  zerolog.Logger
}

func NewBoatService(repo ports.BoatRepository, log zerolog.Logger) *BoatService {
	return &BoatService{repo: repo, log: log}
}

// Reserve books a mooring slot for a date range. Intervals are closed on
// both ends: a booking ending the day another starts is still a conflict.
//
// The existence check and the insert are two separate operations with no
// transaction between them. Two concurrent requests for the same slot can
// both pass the check before either write lands; the club accepts that
// and sorts such cases out at the dock.
func (s *BoatService) Reserve(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error) {
	if input.Slot < 1 {
		return nil, &validate.FieldError{Field: "slot", Reason: "slot number is required"}
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, &validate.FieldError{Field: "address", Reason: "address is required"}
	}
	if err := validate.PostalCode(input.PostalCode); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.City) == "" {
		return nil, &validate.FieldError{Field: "city", Reason: "city is required"}
	}
	if err := validate.DateRange(input.StartUse, input.EndUse); err != nil {
		return nil, err
	}
	if err := validate.Email(input.OwnerEmail); err != nil {
		return nil, err
	}

	n, err := s.repo.CountOverlapping(ctx, input.Slot, input.StartUse, input.EndUse)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		metrics.ReservationConflictsTotal.Inc()
		s.log.Info().Int("slot", input.Slot).Msg("reservation rejected, slot already taken")
		return nil, &domain.SlotConflictError{Slot: input.Slot}
	}

	reservation := &domain.Reservation{
		Slot:       input.Slot,
		Address:    strings.TrimSpace(input.Address),
		PostalCode: input.PostalCode,
		City:       strings.TrimSpace(input.City),
		StartUse:   input.StartUse,
		EndUse:     input.EndUse,
		OwnerEmail: strings.ToLower(strings.TrimSpace(input.OwnerEmail)),
	}

	created, err := s.repo.Create(ctx, reservation)
	if err != nil {
		return nil, err
	}

	metrics.ReservationsTotal.Inc()
	s.log.Info().
		Int("slot", created.Slot).
		Time("start_use", created.StartUse).
		Time("end_use", created.EndUse).
		Msg("slot reserved")
	return created, nil
}

func (s *BoatService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.List(ctx)
}
