// Package dimension owns dimensional signatures.
//
// Ownership boundary:
// - exponent multisets over base dimensions
// - canonical signature keys
// - signature algebra (mul, div, pow)
package dimension
