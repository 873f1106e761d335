package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// MessageHandler handles the chat board routes. The chat page polls the
// listing every second; the service layer absorbs that with a short
// cache.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type postMessageRequest struct {
	Username string `json:"username" validate:"required"`
	Message  string `json:"message"`
	Time     string `json:"time"`
}

type postMessageResponse struct {
	Message string          `json:"message"`
	Data    *domain.Message `json:"data"`
}

// Create handles POST /get/create.
//
// @Summary      Post a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      postMessageRequest  true  "Message"
// @Success      201   {object}  postMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /get/create [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sentAt, err := validate.ParseDate("time", req.Time)
	if err != nil {
		return err
	}

	message, err := h.service.Post(c.Request().Context(), ports.PostMessageInput{
		Username: req.Username,
		Text:     req.Message,
		SentAt:   sentAt,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, postMessageResponse{
		Message: "Message sent successfully",
		Data:    message,
	})
}

// List handles GET /get/messages — the board, oldest first.
//
// @Summary      List chat messages
// @Tags         chat
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      503  {object}  errorResponse
// @Router       /get/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}
