package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/logger"
	"github.com/dmitrymomot/innkeeper/core/response"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.StringWithStatus("NOT READY", http.StatusServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
