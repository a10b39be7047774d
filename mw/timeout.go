package mw

import (
	"context"
	"errors"
	"time"

	"github.com/relaykit/relay"
)

// ErrTimeout is returned when the inner chain does not complete in time.
var ErrTimeout = errors.New("relay/mw: timeout")

// Timeout bounds the inward delegation with a deadline. The inner chain
// runs with a derived context that is cancelled after d; if it has not
// returned by then, ErrTimeout is returned and the inner result is
// discarded when it eventually arrives. Parent-context cancellation is
// reported as the parent's error, not as ErrTimeout.
func Timeout(d time.Duration) relay.Middleware {
	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (*relay.Response, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		type result struct {
			resp *relay.Response
			err  error
		}

		ch := make(chan result, 1)

		go func() {
			resp, err := next.Handle(timeoutCtx, req)
			ch <- result{resp: resp, err: err}
		}()

		select {
		case r := <-ch:
			return r.resp, r.err
		case <-timeoutCtx.Done():
			// Distinguish the deadline from external cancellation.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			return nil, ErrTimeout
		}
	})
}
