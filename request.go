package relay

import "maps"

// Request is an immutable request value flowing inward through a pipeline.
// All With* methods return a modified copy; the receiver is never changed,
// so a Request may be shared freely across middleware and goroutines.
type Request struct {
	method string
	path   string
	header map[string]string
	attrs  map[string]any
	body   []byte
}

// NewRequest creates a request with the given method and target path and no
// headers, attributes, or body.
func NewRequest(method, path string) *Request {
	return &Request{
		method: method,
		path:   path,
	}
}

// Method returns the request method.
func (r *Request) Method() string { return r.method }

// Path returns the request target path.
func (r *Request) Path() string { return r.path }

// Header returns the value of the named header, or "" if unset.
func (r *Request) Header(name string) string { return r.header[name] }

// Headers returns a copy of all headers.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.header)
}

// Attribute returns the named request attribute and whether it is set.
// Attributes carry routing-derived or middleware-derived values alongside
// the request without touching its wire representation.
func (r *Request) Attribute(name string) (any, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// Body returns a copy of the request body.
func (r *Request) Body() []byte {
	if r.body == nil {
		return nil
	}
	out := make([]byte, len(r.body))
	copy(out, r.body)
	return out
}

// WithPath returns a copy of the request with a different target path.
func (r *Request) WithPath(path string) *Request {
	out := r.clone()
	out.path = path
	return out
}

// WithMethod returns a copy of the request with a different method.
func (r *Request) WithMethod(method string) *Request {
	out := r.clone()
	out.method = method
	return out
}

// WithHeader returns a copy of the request with the named header set.
func (r *Request) WithHeader(name, value string) *Request {
	out := r.clone()
	if out.header == nil {
		out.header = make(map[string]string, 1)
	}
	out.header[name] = value
	return out
}

// WithAttribute returns a copy of the request with the named attribute set.
func (r *Request) WithAttribute(name string, value any) *Request {
	out := r.clone()
	if out.attrs == nil {
		out.attrs = make(map[string]any, 1)
	}
	out.attrs[name] = value
	return out
}

// WithBody returns a copy of the request with the given body.
func (r *Request) WithBody(body []byte) *Request {
	out := r.clone()
	out.body = make([]byte, len(body))
	copy(out.body, body)
	return out
}

// clone copies the request, including its maps, so a With* mutation never
// leaks into the original.
func (r *Request) clone() *Request {
	return &Request{
		method: r.method,
		path:   r.path,
		header: maps.Clone(r.header),
		attrs:  maps.Clone(r.attrs),
		body:   r.body,
	}
}
