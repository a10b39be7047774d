package mw

import (
	"github.com/rs/zerolog"

	"github.com/relaykit/relay"
)

// Pattern: Factory Function — presets produce ready-made middleware stacks
// for common use cases, avoiding boilerplate wiring.

// Standard returns the recommended base stack for a service pipeline:
// request IDs, logging, then panic recovery, in that order (outermost
// first), so every request is logged with its correlation ID and panics
// surface as logged 500 responses.
func Standard(logger zerolog.Logger) []relay.Middleware {
	return []relay.Middleware{
		RequestID(),
		Logging(logger),
		Recover(logger),
	}
}
