package relay

import "context"

// Handle is a convenience function that builds an anonymous pipeline and
// runs a single request through it. Sources are resolved by
// [DefaultFactory] against the [DefaultRegistry]. For pipelines that serve
// more than one request, build a [Dispatcher] once and reuse it.
func Handle(ctx context.Context, req *Request, terminal Handler, sources ...any) (*Response, error) {
	d, err := DefaultFactory(DefaultRegistry())(terminal, sources...)
	if err != nil {
		return nil, err
	}

	return d.Handle(ctx, req)
}
