// Package magnitude owns the numeric half of a quantity.
//
// A Value is either an exact arbitrary-precision decimal scalar or a
// value in the vectorized float64 domain (a 1-d vector, or a 0-d float
// produced by reductions). The representation of a Value never changes;
// operations return new Values, and every binary operation passes both
// operands through Align first.
package magnitude
