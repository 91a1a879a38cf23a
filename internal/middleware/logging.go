// Package middleware wraps wizard actions with cross-cutting behavior:
// logging, metrics and session context.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/splitwizard/internal/ledger"
)

// Action is one user-triggered operation.
type Action func(ctx context.Context) error

// Interceptor wraps an Action. name identifies the action (e.g. "add_bill").
type Interceptor func(name string, next Action) Action

// Chain composes interceptors; the first one is the outermost.
func Chain(interceptors ...Interceptor) Interceptor {
	return func(name string, next Action) Action {
		for i := len(interceptors) - 1; i >= 0; i-- {
			next = interceptors[i](name, next)
		}
		return next
	}
}

// Logging returns an interceptor that logs every action.
// It logs the action name, session ID, duration, and the validation kind or error.
func Logging() Interceptor {
	return func(name string, next Action) Action {
		return func(ctx context.Context) error {
			start := time.Now()
			sessionID := GetSessionID(ctx)

			err := next(ctx)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				if verr, ok := ledger.AsValidation(err); ok {
					slog.Warn("Action rejected",
						"action", name,
						"kind", verr.Kind,
						"error", verr.Message,
						"session_id", sessionID,
						"duration_ms", duration,
					)
				} else {
					slog.Error("Action failed",
						"action", name,
						"error", err,
						"session_id", sessionID,
						"duration_ms", duration,
					)
				}
			} else {
				slog.Info("Action ok",
					"action", name,
					"session_id", sessionID,
					"duration_ms", duration,
				)
			}

			return err
		}
	}
}
