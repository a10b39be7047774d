package relay

import "context"

// Pattern: Fallback — the innermost leaf of every chain returns a fixed,
// pre-built response when no middleware has produced one.

// fallbackHandler returns its configured response for every request.
type fallbackHandler struct {
	resp *Response
}

// Fallback creates a Handler that ignores the request and returns resp
// unchanged on every call. It never errors, so it is the conventional
// terminal for chains where some middleware is expected to produce the real
// response.
func Fallback(resp *Response) Handler {
	return &fallbackHandler{resp: resp}
}

func (h *fallbackHandler) Handle(context.Context, *Request) (*Response, error) {
	return h.resp, nil
}
