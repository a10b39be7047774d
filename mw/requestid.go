package mw

import (
	"context"

	"github.com/google/uuid"

	"github.com/relaykit/relay"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// contextKey is an unexported type for context keys in this package.
type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID assigns each request a unique correlation ID. An inbound
// X-Request-ID header is reused (for distributed tracing); otherwise a new
// UUID is generated. The ID is stored in the context, set on the request
// header for inner layers, and echoed on the response.
func RequestID() relay.Middleware {
	return relay.MiddlewareFunc(func(ctx context.Context, req *relay.Request, next relay.Handler) (*relay.Response, error) {
		id := req.Header(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx = context.WithValue(ctx, requestIDKey, id)

		resp, err := next.Handle(ctx, req.WithHeader(HeaderRequestID, id))
		if err != nil {
			return nil, err
		}

		return resp.WithHeader(HeaderRequestID, id), nil
	})
}

// RequestIDFromContext retrieves the request ID from context, or "" if
// RequestID has not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
