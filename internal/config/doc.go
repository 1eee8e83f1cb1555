// Package config loads definitions files: engine defaults plus custom
// dimensions and units applied on top of the built-in catalog.
//
// Ownership boundary:
// - TOML decoding with unknown-key rejection
// - validation of engine, dimension and unit tables
// - translating unit tables into descriptors and axiom options
// - the sample definitions template
package config
