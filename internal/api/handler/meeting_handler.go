package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// MeetingHandler handles meeting scheduling routes.
type MeetingHandler struct {
	service ports.MeetingService
}

func NewMeetingHandler(service ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

type createMeetingRequest struct {
	Title       string `json:"title"        validate:"required"`
	StartTime   string `json:"start_time"   validate:"required"`
	EndTime     string `json:"end_time"     validate:"required"`
	Location    string `json:"location"     validate:"required"`
	Agenda      string `json:"agenda"       validate:"required"`
	IsCompleted bool   `json:"is_completed"`
}

type meetingResponse struct {
	Message string          `json:"message"`
	Meeting *domain.Meeting `json:"meeting"`
}

// updateMeetingRequest uses a pointer so a missing or non-boolean
// is_completed is distinguishable from an explicit false.
type updateMeetingRequest struct {
	IsCompleted *bool `json:"is_completed"`
}

type deleteMeetingResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Create handles POST /meeting/create.
//
// @Summary      Schedule a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        body  body      createMeetingRequest  true  "Meeting details"
// @Success      201   {object}  meetingResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /meeting/create [post]
func (h *MeetingHandler) Create(c echo.Context) error {
	var req createMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := validate.ParseDate("start_time", req.StartTime)
	if err != nil {
		return err
	}
	end, err := validate.ParseDate("end_time", req.EndTime)
	if err != nil {
		return err
	}

	meeting, err := h.service.Create(c.Request().Context(), ports.CreateMeetingInput{
		Title:       req.Title,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		Agenda:      req.Agenda,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, meetingResponse{
		Message: "Meeting created successfully",
		Meeting: meeting,
	})
}

// List handles GET /meeting/fetch — meetings ordered by start time.
//
// @Summary      List meetings
// @Tags         meetings
// @Produce      json
// @Success      200  {array}   domain.Meeting
// @Failure      503  {object}  errorResponse
// @Router       /meeting/fetch [get]
func (h *MeetingHandler) List(c echo.Context) error {
	meetings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if meetings == nil {
		meetings = []*domain.Meeting{}
	}
	return c.JSON(http.StatusOK, meetings)
}

// Update handles PUT /meeting/update/:id — sets the completion flag.
//
// @Summary      Set meeting completion
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Meeting id"
// @Param        body  body      updateMeetingRequest  true  "Completion flag"
// @Success      200   {object}  meetingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /meeting/update/{id} [put]
func (h *MeetingHandler) Update(c echo.Context) error {
	var req updateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.IsCompleted == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "is_completed must be a boolean value")
	}

	meeting, err := h.service.SetCompleted(c.Request().Context(), c.Param("id"), *req.IsCompleted)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, meetingResponse{
		Message: "Meeting updated successfully",
		Meeting: meeting,
	})
}

// Delete handles DELETE /meeting/delete/:id.
//
// @Summary      Delete a meeting
// @Tags         meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting id"
// @Success      200  {object}  deleteMeetingResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /meeting/delete/{id} [delete]
func (h *MeetingHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteMeetingResponse{
		Message: "Meeting deleted successfully",
		ID:      id,
	})
}
