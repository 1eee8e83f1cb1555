// Package convert is the fluent conversion entry point: resolve a source
// and target alias, convert through the quantity pipeline and render the
// result.
//
// Ownership boundary:
// - source/target disambiguation through the shared dimension
// - decimal and float64 computation modes
// - precision, significant figures, rounding and output rendering
// - natural-language time breakdown (Flex)
// - conversion metrics and log events
package convert
