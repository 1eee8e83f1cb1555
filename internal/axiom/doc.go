// Package axiom provides the rule overlays attached to unit descriptors
// and the call-boundary guards for functions that take quantities.
//
// Ownership boundary:
// - bound, shift and scale stages for the descriptor pipeline
// - context sources and formula expressions consumed by those stages
// - derive options that compute multiplier and signature from factors
// - require and prepare guards for dynamically assembled calls
//
// Stages run in attachment order on the way to the base value and in
// reverse on the way back, so a later stage wraps an earlier one.
package axiom
