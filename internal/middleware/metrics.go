package middleware

import (
	"context"

	"github.com/mmynk/splitwizard/internal/ledger"
	"github.com/mmynk/splitwizard/internal/metrics"
)

// Metrics returns an interceptor that counts actions and validation errors.
func Metrics(rec *metrics.Recorder) Interceptor {
	return func(name string, next Action) Action {
		return func(ctx context.Context) error {
			err := next(ctx)
			switch verr, ok := ledger.AsValidation(err); {
			case err == nil:
				rec.Action(name, "ok")
			case ok:
				rec.Action(name, "rejected")
				rec.ValidationError(string(verr.Kind))
			default:
				rec.Action(name, "error")
			}
			return err
		}
	}
}
