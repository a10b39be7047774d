package mw

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/relaykit/relay"
)

// Logging logs one line per request with method, path, status, and
// duration. Errors from inner layers are logged and propagated unchanged.
// If RequestID runs outside this middleware the correlation ID is included.
func Logging(logger zerolog.Logger) relay.Middleware {
	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (*relay.Response, error) {
		start := time.Now()

		resp, err := next.Handle(ctx, req)

		var evt *zerolog.Event
		if err != nil {
			evt = logger.Error().Err(err)
		} else {
			evt = logger.Info()
		}

		if id := RequestIDFromContext(ctx); id != "" {
			evt = evt.Str("request_id", id)
		}

		evt = evt.
			Str("method", req.Method()).
			Str("path", req.Path()).
			Dur("duration", time.Since(start))

		if resp != nil {
			evt = evt.Int("status", resp.Status())
		}

		evt.Msg("request")

		return resp, err
	})
}
