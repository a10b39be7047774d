package httpx

import (
	"fmt"
	"io"
	"net/http"

	"github.com/relaykit/relay"
)

// Pattern: Adapter — translates between net/http's mutable writer model and
// relay's immutable value model at the pipeline boundary.

// FromRequest converts an inbound *http.Request into a relay.Request. The
// body is read fully; multi-valued headers keep their first value.
func FromRequest(r *http.Request) (*relay.Request, error) {
	req := relay.NewRequest(r.Method, r.URL.Path)

	for name, values := range r.Header {
		if len(values) > 0 {
			req = req.WithHeader(name, values[0])
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("httpx: read body: %w", err)
		}

		if len(body) > 0 {
			req = req.WithBody(body)
		}
	}

	return req, nil
}

// WriteResponse writes a relay.Response to w: headers first, then status,
// then body.
func WriteResponse(w http.ResponseWriter, resp *relay.Response) error {
	for name, value := range resp.Headers() {
		w.Header().Set(name, value)
	}

	w.WriteHeader(resp.Status())

	if _, err := w.Write(resp.Body()); err != nil {
		return fmt.Errorf("httpx: write body: %w", err)
	}

	return nil
}

// Serve mounts h as an http.Handler. The request context is passed through
// to the pipeline, so server-side cancellation reaches every middleware.
// Pipeline errors surface as plain 500 responses; centralize richer error
// rendering in a middleware instead.
func Serve(h relay.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := FromRequest(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		resp, err := h.Handle(r.Context(), req)
		if err != nil || resp == nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		_ = WriteResponse(w, resp)
	})
}
