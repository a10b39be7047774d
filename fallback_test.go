package relay

import (
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// Fallback returns the identical response for every request
// ---------------------------------------------------------------------------

func TestFallbackReturnsSameResponseForEveryRequest(t *testing.T) {
	resp := NewResponse(404).WithText("not found")
	h := Fallback(resp)

	requests := []*Request{
		NewRequest("GET", "/"),
		NewRequest("POST", "/submit").WithBody([]byte("payload")),
		NewRequest("DELETE", "/anything").WithHeader("Authorization", "Bearer x"),
	}

	for _, req := range requests {
		got, err := h.Handle(context.Background(), req)
		if err != nil {
			t.Fatalf("Handle(%s %s) error = %v, want nil", req.Method(), req.Path(), err)
		}
		if got != resp {
			t.Fatalf("Handle(%s %s) = %p, want the configured response %p", req.Method(), req.Path(), got, resp)
		}
	}
}

func TestFallbackIgnoresContextValues(t *testing.T) {
	type key string

	h := Fallback(NewResponse(204))

	ctx := context.WithValue(context.Background(), key("k"), "v")

	got, err := h.Handle(ctx, NewRequest("GET", "/"))
	if err != nil {
		t.Fatalf("Handle() error = %v, want nil", err)
	}
	if got.Status() != 204 {
		t.Fatalf("Handle() status = %d, want 204", got.Status())
	}
}
