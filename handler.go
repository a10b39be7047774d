package relay

import "context"

// Handler produces a Response from a Request. It is the terminal capability
// of a pipeline: a chain of any length presents itself to callers as a
// single Handler.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Middleware processes a request together with next, the remainder of the
// chain. A middleware may transform the request before delegating, transform
// the response on the way out, or return without calling next at all,
// short-circuiting every inner layer. next must be called at most once per
// invocation; the chain does not prevent repeated calls, but their semantics
// are undefined.
type Middleware interface {
	Process(ctx context.Context, req *Request, next Handler) (*Response, error)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(ctx context.Context, req *Request, next Handler) (*Response, error)

// Process calls f.
func (f MiddlewareFunc) Process(ctx context.Context, req *Request, next Handler) (*Response, error) {
	return f(ctx, req, next)
}
