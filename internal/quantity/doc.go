// Package quantity owns the immutable value pairing a magnitude with a
// unit descriptor and an environment context.
//
// Ownership boundary:
// - construction and construction-time checks
// - base-value normalization and conversion between descriptors
// - arithmetic, comparisons and allow-listed reductions
//
// Every operation returns a new Quantity; operands are never modified.
package quantity
