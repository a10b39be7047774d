package relay

import "maps"

// Response is an immutable response value flowing outward through a
// pipeline. All With* methods return a modified copy; a Response built once
// (for example as a fallback) may be returned for every request.
type Response struct {
	status int
	header map[string]string
	body   []byte
}

// NewResponse creates a response with the given status code and no headers
// or body.
func NewResponse(status int) *Response {
	return &Response{status: status}
}

// Status returns the response status code.
func (r *Response) Status() int { return r.status }

// Header returns the value of the named header, or "" if unset.
func (r *Response) Header(name string) string { return r.header[name] }

// Headers returns a copy of all headers.
func (r *Response) Headers() map[string]string {
	return maps.Clone(r.header)
}

// Body returns a copy of the response body.
func (r *Response) Body() []byte {
	if r.body == nil {
		return nil
	}
	out := make([]byte, len(r.body))
	copy(out, r.body)
	return out
}

// WithStatus returns a copy of the response with a different status code.
func (r *Response) WithStatus(status int) *Response {
	out := r.clone()
	out.status = status
	return out
}

// WithHeader returns a copy of the response with the named header set.
func (r *Response) WithHeader(name, value string) *Response {
	out := r.clone()
	if out.header == nil {
		out.header = make(map[string]string, 1)
	}
	out.header[name] = value
	return out
}

// WithBody returns a copy of the response with the given body.
func (r *Response) WithBody(body []byte) *Response {
	out := r.clone()
	out.body = make([]byte, len(body))
	copy(out.body, body)
	return out
}

// WithText returns a copy of the response with the given string body.
func (r *Response) WithText(body string) *Response {
	return r.WithBody([]byte(body))
}

func (r *Response) clone() *Response {
	return &Response{
		status: r.status,
		header: maps.Clone(r.header),
		body:   r.body,
	}
}
