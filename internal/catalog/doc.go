// Package catalog defines the built-in dimensions, units and physical
// constants, and wires them into a registry at startup.
//
// Ownership boundary:
// - exported descriptors for the common units of each dimension
// - physical constants used by multipliers and context defaults
// - explicit registration through Register or New
package catalog
