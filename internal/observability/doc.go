// Package observability owns the Prometheus collectors and structured
// conversion log events for the engine.
//
// Ownership boundary:
// - metric names, labels and one-time registration
// - recorder helpers called from the unit registry and the convert builder
// - conversion log event shape
package observability
