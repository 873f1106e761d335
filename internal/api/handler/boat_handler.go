package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// BoatHandler handles slot reservation routes.
type BoatHandler struct {
	service ports.BoatService
}

func NewBoatHandler(service ports.BoatService) *BoatHandler {
	return &BoatHandler{service: service}
}

type createBoatRequest struct {
	Slot       int    `json:"slot"         validate:"required"`
	Address    string `json:"address"      validate:"required"`
	PostalCode int    `json:"postal_code"`
	City       string `json:"city"         validate:"required"`
	StartUse   string `json:"start_use"    validate:"required"`
	EndUse     string `json:"end_use"      validate:"required"`
	OwnerEmail string `json:"owner_email"  validate:"required"`
}

type createBoatResponse struct {
	Message     string              `json:"message"`
	Reservation *domain.Reservation `json:"reservation"`
}

// boatSummaryResponse is the listing projection: the reservation board
// shows slot and period, not the owner's street address.
type boatSummaryResponse struct {
	ID         string    `json:"id"`
	Slot       int       `json:"slot"`
	StartUse   time.Time `json:"start_use"`
	EndUse     time.Time `json:"end_use"`
	OwnerEmail string    `json:"owner_email"`
}

// Create handles POST /registerBoat/createBoat.
//
// @Summary      Reserve a mooring slot
// @Tags         boats
// @Accept       json
// @Produce      json
// @Param        body  body      createBoatRequest  true  "Reservation details"
// @Success      201   {object}  createBoatResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /registerBoat/createBoat [post]
func (h *BoatHandler) Create(c echo.Context) error {
	var req createBoatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := validate.ParseDate("start_use", req.StartUse)
	if err != nil {
		return err
	}
	end, err := validate.ParseDate("end_use", req.EndUse)
	if err != nil {
		return err
	}

	reservation, err := h.service.Reserve(c.Request().Context(), ports.ReserveInput{
		Slot:       req.Slot,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		StartUse:   start,
		EndUse:     end,
		OwnerEmail: req.OwnerEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createBoatResponse{
		Message:     "Boat registered successfully",
		Reservation: reservation,
	})
}

// List handles GET /registerBoat/seeBoats.
//
// @Summary      List slot reservations
// @Tags         boats
// @Produce      json
// @Success      200  {array}   boatSummaryResponse
// @Failure      503  {object}  errorResponse
// @Router       /registerBoat/seeBoats [get]
func (h *BoatHandler) List(c echo.Context) error {
	reservations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]boatSummaryResponse, len(reservations))
	for i, r := range reservations {
		out[i] = boatSummaryResponse{
			ID:         r.ID,
			Slot:       r.Slot,
			StartUse:   r.StartUse,
			EndUse:     r.EndUse,
			OwnerEmail: r.OwnerEmail,
		}
	}
	return c.JSON(http.StatusOK, out)
}
