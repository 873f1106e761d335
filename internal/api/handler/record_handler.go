package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// RecordHandler handles the incident log routes.
type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

type createRecordRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Date     string `json:"date"     validate:"required"`
	Reason   string `json:"reason"   validate:"required"`
}

// Create handles POST /record/make.
//
// @Summary      Log an incident
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      createRecordRequest  true  "Incident details"
// @Success      201   {object}  domain.Record
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /record/make [post]
func (h *RecordHandler) Create(c echo.Context) error {
	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := validate.ParseDate("date", req.Date)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateRecordInput{
		Username: req.Username,
		Email:    req.Email,
		Date:     date,
		Reason:   req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// List handles GET /record/find.
//
// @Summary      List incidents
// @Tags         records
// @Produce      json
// @Success      200  {array}   domain.Record
// @Failure      503  {object}  errorResponse
// @Router       /record/find [get]
func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []*domain.Record{}
	}
	return c.JSON(http.StatusOK, records)
}
