package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

type stubBoatService struct {
	reserveFn func(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error)
	listFn    func(ctx context.Context) ([]*domain.Reservation, error)
}

func (s *stubBoatService) Reserve(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error) {
	return s.reserveFn(ctx, input)
}

func (s *stubBoatService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.listFn(ctx)
}

func TestBoatHandler_Create_Success(t *testing.T) {
	stub := &stubBoatService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error) {
			if input.Slot != 7 {
				t.Fatalf("unexpected slot: %d", input.Slot)
			}
			want := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
			if !input.StartUse.Equal(want) {
				t.Fatalf("start date not parsed: %v", input.StartUse)
			}
			return &domain.Reservation{
				ID:         "res_1",
				Slot:       input.Slot,
				Address:    input.Address,
				City:       input.City,
				StartUse:   input.StartUse,
				EndUse:     input.EndUse,
				OwnerEmail: input.OwnerEmail,
			}, nil
		},
	}
	h := NewBoatHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/registerBoat/createBoat",
		`{"slot":7,"address":"Havnegata 1","postal_code":4005,"city":"Stavanger","start_use":"2026-06-01","end_use":"2026-06-10","owner_email":"owner@example.com"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Boat registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	reservation, ok := resp["reservation"].(map[string]any)
	if !ok || reservation["slot"] != float64(7) {
		t.Fatalf("unexpected reservation payload: %+v", resp["reservation"])
	}
}

func TestBoatHandler_Create_BadDate(t *testing.T) {
	stub := &stubBoatService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewBoatHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/registerBoat/createBoat",
		`{"slot":7,"address":"Havnegata 1","city":"Stavanger","start_use":"next tuesday","end_use":"2026-06-10","owner_email":"owner@example.com"}`)

	err := h.Create(c)
	var fieldErr *validate.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "start_use" {
		t.Fatalf("expected start_use FieldError, got %v", err)
	}
}

func TestBoatHandler_Create_ConflictPassthrough(t *testing.T) {
	stub := &stubBoatService{
		reserveFn: func(ctx context.Context, input ports.ReserveInput) (*domain.Reservation, error) {
			return nil, &domain.SlotConflictError{Slot: input.Slot}
		},
	}
	h := NewBoatHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/registerBoat/createBoat",
		`{"slot":7,"address":"Havnegata 1","city":"Stavanger","start_use":"2026-06-01","end_use":"2026-06-10","owner_email":"owner@example.com"}`)

	err := h.Create(c)
	var conflict *domain.SlotConflictError
	if !errors.As(err, &conflict) || conflict.Slot != 7 {
		t.Fatalf("expected SlotConflictError passthrough, got %v", err)
	}
}

func TestBoatHandler_List_ProjectsAwayAddress(t *testing.T) {
	stub := &stubBoatService{
		listFn: func(ctx context.Context) ([]*domain.Reservation, error) {
			return []*domain.Reservation{{
				ID:         "res_1",
				Slot:       7,
				Address:    "Havnegata 1",
				PostalCode: 4005,
				City:       "Stavanger",
				StartUse:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				EndUse:     time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
				OwnerEmail: "owner@example.com",
			}}, nil
		},
	}
	h := NewBoatHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/registerBoat/seeBoats", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(resp))
	}
	if _, present := resp[0]["address"]; present {
		t.Fatalf("listing must not expose the owner's address: %+v", resp[0])
	}
	if resp[0]["slot"] != float64(7) || resp[0]["owner_email"] != "owner@example.com" {
		t.Fatalf("unexpected payload: %+v", resp[0])
	}
}
