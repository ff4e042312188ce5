// Package record provides the document store for the SOLA backend.
//
// Records are validated documents persisted under kind-named collections.
// The store generates an opaque identifier at creation time; records are
// never updated or deleted. Listing supports an exact-match field filter
// and a caller-supplied limit, returning records in insertion order.
//
// The kind-to-collection mapping is a closed set fixed at startup, taken
// from the catalog. A store can exist in three states: operational,
// unconfigured (no database path), and unavailable (open failed); the
// Probe operation reports the state without ever failing itself.
//
// # Thread Safety
//
// All methods are safe for concurrent use. There are no read-modify-write
// races because no update operation exists; SQLite's single-writer model
// serialises inserts.
package record
