// Package relay provides a composable request-processing pipeline for Go
// applications.
//
// The central types are Handler, which produces a Response from a Request,
// and Middleware, which wraps a request together with the remainder of the
// chain. Chains are built once with NewStack or NewQueue, extended
// persistently with Dispatcher.With, and assembled from heterogeneous
// sources (middleware values, plain functions, registry keys) through
// composable resolver factories.
package relay
