package relay

import (
	"errors"
	"fmt"
)

// relayError is the concrete type backing all sentinel errors.
type relayError string

// Sentinel errors.
var (
	// ErrNotRegistered is returned when a registry lookup names a key that
	// has no registered constructor. With keyed resolution the lookup is
	// deferred, so this surfaces during request processing, not at build
	// time.
	ErrNotRegistered error = relayError("middleware not registered")
)

func (e relayError) Error() string { return string(e) }

// ResolutionError reports a pipeline source value that no resolver in the
// factory chain recognized. It is returned at build time, before any request
// is processed.
type ResolutionError struct {
	// Value is the offending source value.
	Value any
	// Index is the position of the value in the source list.
	Index int
}

// Error returns a human-readable description of the unresolved source.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("relay: cannot resolve pipeline source %d of type %T", e.Index, e.Value)
}

// IsResolutionError reports whether err is (or wraps) a *ResolutionError.
func IsResolutionError(err error) bool {
	var re *ResolutionError

	return errors.As(err, &re)
}
