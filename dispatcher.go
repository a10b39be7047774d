package relay

import "context"

// Dispatcher is an immutable Handler that can grow. With returns a new
// Dispatcher wrapping one more middleware around the current chain, leaving
// the receiver untouched, so many derived dispatchers may share the same
// ancestor chain (persistent structural sharing).
//
// Pattern: Decorator — extension never rebuilds the existing chain; it adds
// exactly one node around it.
type Dispatcher struct {
	inner Handler
}

// NewDispatcher builds a dispatcher over terminal with the given
// middlewares in stack order: the first listed middleware executes first,
// matching [NewStack]. With no middlewares the dispatcher is a thin shell
// around the terminal.
func NewDispatcher(terminal Handler, middlewares ...Middleware) *Dispatcher {
	return &Dispatcher{inner: NewStack(terminal, middlewares...)}
}

// Handle runs the request through the dispatcher's chain.
func (d *Dispatcher) Handle(ctx context.Context, req *Request) (*Response, error) {
	return d.inner.Handle(ctx, req)
}

// With returns a new Dispatcher in which m is the outermost layer, executing
// before every middleware already in the chain. The receiver is not
// modified and remains independently usable; siblings derived from the same
// dispatcher never observe each other's extensions.
func (d *Dispatcher) With(m Middleware) *Dispatcher {
	return &Dispatcher{inner: Wrap(d.inner, m)}
}
