package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batforeningen/marina-api/internal/core/domain"
)

// Pinger reports whether the persistence layer is reachable.
type Pinger interface {
	Check(ctx context.Context) error
}

// DatabaseReady gates every request on an established database
// connection and short-circuits with 503 when it cannot be verified.
// The liveness probe, metrics, and the API docs stay reachable so a
// down database is still observable.
func DatabaseReady(db Pinger, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipReadinessGate(c.Path()) {
				return next(c)
			}
			if err := db.Check(c.Request().Context()); err != nil {
				log.Warn().Err(err).Str("path", c.Path()).Msg("request rejected, database not reachable")
				return domain.ErrDatabaseUnavailable
			}
			return next(c)
		}
	}
}

func skipReadinessGate(path string) bool {
	return path == "/health" ||
		path == "/health/ready" ||
		path == "/metrics" ||
		strings.HasPrefix(path, "/swagger")
}
