package mw

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/relaykit/relay"
)

// Cache serves repeated GET requests from an in-memory LRU keyed by path,
// short-circuiting the rest of the chain on a hit. Only successful (2xx)
// responses are stored; everything else passes through uncached. Entries
// expire after ttl and the cache holds at most maxEntries responses.
//
// Responses are immutable, so a cached *relay.Response is returned as-is to
// any number of concurrent callers.
func Cache(maxEntries int, ttl time.Duration) relay.Middleware {
	lru := expirable.NewLRU[string, *relay.Response](maxEntries, nil, ttl)

	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (*relay.Response, error) {
		if req.Method() != "GET" {
			return next.Handle(ctx, req)
		}

		key := req.Path()
		if resp, ok := lru.Get(key); ok {
			return resp, nil
		}

		resp, err := next.Handle(ctx, req)
		if err == nil && resp != nil && resp.Status() >= 200 && resp.Status() < 300 {
			lru.Add(key, resp)
		}

		return resp, err
	})
}
