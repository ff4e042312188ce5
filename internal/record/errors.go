package record

import "errors"

// Domain errors for the record package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, record.ErrNotConfigured) {
//	    // respond 503, point the operator at /test
//	}
var (
	// ErrNotConfigured is returned when no database was configured.
	// The diagnostic probe reports this state instead of failing.
	ErrNotConfigured = errors.New("record: store not configured")

	// ErrUnavailable is returned when the database is configured but
	// cannot be reached.
	ErrUnavailable = errors.New("record: store unavailable")

	// ErrUnknownKind is returned for a kind outside the closed set fixed
	// at startup.
	ErrUnknownKind = errors.New("record: unknown kind")

	// ErrNotFound is reserved for single-record lookups; no current
	// operation returns it.
	ErrNotFound = errors.New("record: not found")
)
