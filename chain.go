package relay

import "context"

// Pattern: Decorator — each chain node binds one middleware to one inner
// handler, so a full pipeline is a nest of nodes behind a single Handler.

// chainNode is a Handler that delegates to one middleware, passing the inner
// handler as the continuation. The node itself performs no work: whether the
// inner handler runs at all is the middleware's decision. Nodes are
// immutable after construction and safe for concurrent Handle calls.
type chainNode struct {
	mw    Middleware
	inner Handler
}

// Wrap binds m around inner, producing a Handler in which m executes first
// and inner runs only if m delegates. Errors from m or inner propagate
// unchanged.
func Wrap(inner Handler, m Middleware) Handler {
	return &chainNode{mw: m, inner: inner}
}

func (n *chainNode) Handle(ctx context.Context, req *Request) (*Response, error) {
	return n.mw.Process(ctx, req, n.inner)
}

// NewStack folds middlewares around terminal so that the first listed
// middleware is the outermost layer.
//
// NewStack(h, a, b, c) executes a, b, c, then h — the same convention as
// listing wrappers outermost-first. With no middlewares the terminal is
// returned unchanged.
func NewStack(terminal Handler, middlewares ...Middleware) Handler {
	h := terminal
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = Wrap(h, middlewares[i])
	}

	return h
}

// NewQueue folds middlewares around terminal in arrival order: the first
// listed middleware is the innermost layer, closest to the terminal.
//
// NewQueue(h, a, b, c) executes c, b, a, then h — the mirror image of
// [NewStack] over the same list. With no middlewares the terminal is
// returned unchanged; a single middleware builds the same chain either way.
func NewQueue(terminal Handler, middlewares ...Middleware) Handler {
	reversed := make([]Middleware, 0, len(middlewares))
	for i := len(middlewares) - 1; i >= 0; i-- {
		reversed = append(reversed, middlewares[i])
	}

	return NewStack(terminal, reversed...)
}
