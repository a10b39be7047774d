package mw

import (
	"context"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/relaykit/relay"
)

// Recover catches panics from inner layers, logs the panic value and stack
// trace, and returns a plain 500 response instead of unwinding into the
// host. Errors returned normally by inner layers are not touched.
func Recover(logger zerolog.Logger) relay.Middleware {
	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (resp *relay.Response, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("method", req.Method()).
					Str("path", req.Path()).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				resp = relay.NewResponse(500).WithText("internal error")
				err = nil
			}
		}()

		return next.Handle(ctx, req)
	})
}
