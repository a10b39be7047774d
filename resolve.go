package relay

import "context"

// Pattern: Chain of Responsibility — each resolver recognizes one family of
// source shapes and passes everything else to the factory it decorates, so
// the supported input surface is chosen by how factories are stacked.

// Factory builds a Dispatcher from a terminal handler and a list of
// heterogeneous pipeline sources. The base factory accepts only values that
// already satisfy the Middleware or Handler capability; resolver decorators
// ([ResolveFuncs], [ResolveKeys]) widen the accepted shapes. Resolution
// happens once per build, never per request.
type Factory func(terminal Handler, sources ...any) (*Dispatcher, error)

// NewFactory returns the base factory. It accepts Middleware values
// unchanged and adapts Handler values into middleware that respond directly
// without consulting the rest of the chain. Any other source yields a
// *ResolutionError identifying the offending position.
func NewFactory() Factory {
	return func(terminal Handler, sources ...any) (*Dispatcher, error) {
		middlewares := make([]Middleware, 0, len(sources))

		for i, src := range sources {
			switch v := src.(type) {
			case Middleware:
				middlewares = append(middlewares, v)
			case Handler:
				middlewares = append(middlewares, handlerMiddleware{h: v})
			default:
				return nil, &ResolutionError{Value: src, Index: i}
			}
		}

		return NewDispatcher(terminal, middlewares...), nil
	}
}

// ResolveFuncs decorates next so plain functions of the two pipeline
// signatures are accepted as sources:
//
//	func(ctx, *Request) (*Response, error)           // handler-shaped
//	func(ctx, *Request, Handler) (*Response, error)  // middleware-shaped
//
// Values already satisfying Middleware or Handler, and anything else, pass
// through to next unchanged.
func ResolveFuncs(next Factory) Factory {
	return func(terminal Handler, sources ...any) (*Dispatcher, error) {
		resolved := make([]any, len(sources))

		for i, src := range sources {
			switch v := src.(type) {
			case Middleware, Handler:
				resolved[i] = src
			case func(context.Context, *Request, Handler) (*Response, error):
				resolved[i] = MiddlewareFunc(v)
			case func(context.Context, *Request) (*Response, error):
				resolved[i] = HandlerFunc(v)
			default:
				resolved[i] = src
			}
		}

		return next(terminal, resolved...)
	}
}

// ResolveKeys decorates next so string sources are treated as registry keys.
// A key resolves to a middleware whose Process performs the registry lookup
// at request time, not at build time: keys in chain positions that are
// short-circuited away are never looked up, and their constructors never
// run. An unregistered key therefore surfaces as an [ErrNotRegistered] error
// from Handle, not from the factory.
//
// Values already satisfying Middleware or Handler, and anything else, pass
// through to next unchanged.
func ResolveKeys(reg *Registry, next Factory) Factory {
	return func(terminal Handler, sources ...any) (*Dispatcher, error) {
		resolved := make([]any, len(sources))

		for i, src := range sources {
			switch v := src.(type) {
			case Middleware, Handler:
				resolved[i] = src
			case string:
				resolved[i] = &keyedMiddleware{reg: reg, key: v}
			default:
				resolved[i] = src
			}
		}

		return next(terminal, resolved...)
	}
}

// DefaultFactory composes the stock resolvers over the base factory:
// functions and registry keys are both accepted, with function resolution
// checked first.
func DefaultFactory(reg *Registry) Factory {
	return ResolveFuncs(ResolveKeys(reg, NewFactory()))
}

// handlerMiddleware adapts a Handler source into a middleware that responds
// directly. The rest of the chain behind it is unreachable.
type handlerMiddleware struct {
	h Handler
}

func (m handlerMiddleware) Process(ctx context.Context, req *Request, _ Handler) (*Response, error) {
	return m.h.Handle(ctx, req)
}

// keyedMiddleware defers a registry lookup until the chain actually reaches
// its position.
type keyedMiddleware struct {
	reg *Registry
	key string
}

func (m *keyedMiddleware) Process(ctx context.Context, req *Request, next Handler) (*Response, error) {
	mw, err := m.reg.Get(m.key)
	if err != nil {
		return nil, err
	}

	return mw.Process(ctx, req, next)
}
