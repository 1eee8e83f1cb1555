// Package unit owns unit descriptors and the registry that catalogs them.
//
// Ownership boundary:
// - descriptor shape and the toBase/fromBase stage pipeline
// - alias table and dimensional-signature (DNA) table
// - derivation algebra over descriptors
// - the typed error taxonomy surfaced by the engine
package unit
