// Package httpx bridges relay pipelines and net/http.
//
// Serve mounts any relay.Handler as an http.Handler; FromRequest and
// WriteResponse convert between the two request/response representations
// for hosts that need finer control.
package httpx
