package relay

import "testing"

// ---------------------------------------------------------------------------
// With* operations never mutate the receiver
// ---------------------------------------------------------------------------

func TestRequestWithersReturnModifiedCopies(t *testing.T) {
	base := NewRequest("GET", "/orig").WithHeader("Accept", "text/plain")

	modified := base.
		WithMethod("POST").
		WithPath("/new").
		WithHeader("Accept", "application/json").
		WithAttribute("route", "things").
		WithBody([]byte("payload"))

	if base.Method() != "GET" || base.Path() != "/orig" {
		t.Fatalf("base mutated: %s %s", base.Method(), base.Path())
	}
	if base.Header("Accept") != "text/plain" {
		t.Fatalf("base header mutated: %q", base.Header("Accept"))
	}
	if _, ok := base.Attribute("route"); ok {
		t.Fatal("base gained an attribute")
	}
	if base.Body() != nil {
		t.Fatalf("base gained a body: %q", base.Body())
	}

	if modified.Method() != "POST" || modified.Path() != "/new" {
		t.Fatalf("copy = %s %s, want POST /new", modified.Method(), modified.Path())
	}
	if modified.Header("Accept") != "application/json" {
		t.Fatalf("copy header = %q, want application/json", modified.Header("Accept"))
	}
	if v, ok := modified.Attribute("route"); !ok || v != "things" {
		t.Fatalf("copy attribute = %v, want %q", v, "things")
	}
	if string(modified.Body()) != "payload" {
		t.Fatalf("copy body = %q, want %q", modified.Body(), "payload")
	}
}

func TestRequestAccessorsReturnCopies(t *testing.T) {
	req := NewRequest("GET", "/").
		WithHeader("X-A", "1").
		WithBody([]byte("abc"))

	req.Headers()["X-A"] = "tampered"
	req.Body()[0] = 'z'

	if req.Header("X-A") != "1" {
		t.Fatalf("header mutated through accessor: %q", req.Header("X-A"))
	}
	if string(req.Body()) != "abc" {
		t.Fatalf("body mutated through accessor: %q", req.Body())
	}
}

func TestResponseWithersReturnModifiedCopies(t *testing.T) {
	base := NewResponse(200).WithText("ok").WithHeader("X-A", "1")

	modified := base.
		WithStatus(503).
		WithText("down").
		WithHeader("X-A", "2")

	if base.Status() != 200 || string(base.Body()) != "ok" || base.Header("X-A") != "1" {
		t.Fatalf("base mutated: %d %q %q", base.Status(), base.Body(), base.Header("X-A"))
	}
	if modified.Status() != 503 || string(modified.Body()) != "down" || modified.Header("X-A") != "2" {
		t.Fatalf("copy = %d %q %q, want 503 %q %q", modified.Status(), modified.Body(), modified.Header("X-A"), "down", "2")
	}
}

func TestResponseAccessorsReturnCopies(t *testing.T) {
	resp := NewResponse(200).WithText("abc").WithHeader("X-A", "1")

	resp.Headers()["X-A"] = "tampered"
	resp.Body()[0] = 'z'

	if resp.Header("X-A") != "1" {
		t.Fatalf("header mutated through accessor: %q", resp.Header("X-A"))
	}
	if string(resp.Body()) != "abc" {
		t.Fatalf("body mutated through accessor: %q", resp.Body())
	}
}

func TestWithBodyDoesNotAliasCallerSlice(t *testing.T) {
	buf := []byte("abc")
	req := NewRequest("POST", "/").WithBody(buf)

	buf[0] = 'z'

	if string(req.Body()) != "abc" {
		t.Fatalf("body aliased the caller's slice: %q", req.Body())
	}
}
