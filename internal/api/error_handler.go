package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// errorResponse is the canonical error envelope for all API errors.
// Details carries the underlying cause in development mode only.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the closed set of domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client (outside development mode).
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c, development)
		_ = c.JSON(code, errorResponse{Error: msg, Details: details})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, development bool) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// The closed error taxonomy, matched exhaustively.
	var fieldErr *validate.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest, fieldErr.Reason, ""
	}
	var dupErr *domain.DuplicateError
	if errors.As(err, &dupErr) {
		return http.StatusConflict, dupErr.Error(), ""
	}
	var slotErr *domain.SlotConflictError
	if errors.As(err, &slotErr) {
		return http.StatusConflict, slotErr.Error(), ""
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	case errors.Is(err, domain.ErrMeetingNotFound):
		return http.StatusNotFound, "meeting not found", ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", ""
	case errors.Is(err, domain.ErrMalformedID):
		return http.StatusBadRequest, "invalid id format", ""
	case errors.Is(err, domain.ErrDatabaseUnavailable):
		return http.StatusServiceUnavailable, "database connection not available, please try again later", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	details := ""
	if development {
		details = err.Error()
	}
	return http.StatusInternalServerError, "internal server error", details
}
