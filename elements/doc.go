// Package elements supplies element-symbol tables to the parsers.
//
// The parsers only ever ask whether a string is an element symbol, and they
// ask it through the Table interface. This package provides:
//
//   - Set: an immutable, concurrency-safe table built from Atom records.
//   - Periodic: the built-in 118-element IUPAC table.
//   - Load / LoadFile: read atom lists from JSON (the /data/atoms payload
//     shape) or YAML.
//
// Fetching or persisting atoms is the caller's business (see package store);
// a Table is always a plain synchronous lookup.
package elements
