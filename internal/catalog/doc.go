// Package catalog is the static registry of record kinds for the SOLA
// backend.
//
// It is the single source of truth for what shapes exist: each kind
// declares its fields, their types, defaults, and constraints. The same
// table drives input validation (Validate) and schema introspection
// (Describe, Exposed), so the two can never drift apart.
//
// The kind set is closed and fixed at compile time; a kind name is also
// the storage collection it maps to.
package catalog
