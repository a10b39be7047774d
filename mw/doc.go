// Package mw provides stock middleware for relay pipelines: request IDs,
// structured logging, panic recovery, Prometheus metrics, deadline
// enforcement, and response caching.
//
// Each constructor returns a relay.Middleware ready to be listed in a chain
// or registered under a key for config-driven pipelines.
package mw
