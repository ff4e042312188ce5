package record

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/solavatzka/sola-backend/internal/infrastructure/database"
)

// Record is a persisted document of some kind. Every record returned by
// the store carries its identifier under the "id" key as a plain string.
type Record = map[string]any

// Filter is an equality filter: every listed field must match exactly.
// An empty filter matches all records of the kind.
type Filter = map[string]any

// Store is the persistence contract for validated records.
//
// Implementations must be safe for concurrent use. Records reaching
// Create have already passed catalog validation; the store persists them
// verbatim and only adds the generated identifier.
type Store interface {
	// Create persists a record under its kind and returns the generated
	// identifier. The caller's map is not mutated.
	Create(ctx context.Context, kind string, rec Record) (string, error)

	// List returns records of a kind matching the filter, in insertion
	// order, capped at limit. Limit bounds are enforced by the caller.
	List(ctx context.Context, kind string, filter Filter, limit int) ([]Record, error)

	// Probe reports store reachability and configuration. It never fails;
	// every failure state is captured in the report itself.
	Probe(ctx context.Context) Report
}

// SQLiteStore persists records as JSON documents in a single SQLite table,
// one logical collection per kind.
type SQLiteStore struct {
	db         *database.DB
	kinds      map[string]struct{}
	configured bool
	openErr    error
}

// NewSQLiteStore creates a store over an open database connection.
// kinds is the closed set of collection names accepted by Create/List,
// fixed at startup.
func NewSQLiteStore(db *database.DB, kinds []string) *SQLiteStore {
	return &SQLiteStore{
		db:         db,
		kinds:      kindSet(kinds),
		configured: true,
	}
}

// NewUnconfigured creates a store for a deployment with no database
// configured. Create and List fail with ErrNotConfigured; Probe reports
// the unconfigured state.
func NewUnconfigured(kinds []string) *SQLiteStore {
	return &SQLiteStore{
		kinds: kindSet(kinds),
	}
}

// NewUnavailable creates a store whose database was configured but could
// not be opened. Create and List fail with ErrUnavailable; Probe reports
// the recorded open failure.
func NewUnavailable(openErr error, kinds []string) *SQLiteStore {
	return &SQLiteStore{
		kinds:      kindSet(kinds),
		configured: true,
		openErr:    openErr,
	}
}

func kindSet(kinds []string) map[string]struct{} {
	set := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// ready checks that the store can serve reads and writes.
func (s *SQLiteStore) ready(kind string) error {
	if _, ok := s.kinds[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !s.configured {
		return ErrNotConfigured
	}
	if s.db == nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, s.openErr)
	}
	return nil
}

// Create persists a record and returns its generated identifier.
func (s *SQLiteStore) Create(ctx context.Context, kind string, rec Record) (string, error) {
	if err := s.ready(kind); err != nil {
		return "", err
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding %s record: %w", kind, err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO documents (id, kind, body, created_at) VALUES (?, ?, ?, ?)",
		id, kind, string(body), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("%w: inserting %s record: %v", ErrUnavailable, kind, err)
	}

	return id, nil
}

// List returns records of a kind matching the filter, in insertion order.
func (s *SQLiteStore) List(ctx context.Context, kind string, filter Filter, limit int) ([]Record, error) {
	if err := s.ready(kind); err != nil {
		return nil, err
	}

	// With no filter the limit can be pushed into SQL. With a filter the
	// match happens on decoded documents, so rows are streamed until the
	// limit is satisfied.
	query := "SELECT id, body FROM documents WHERE kind = ? ORDER BY rowid"
	args := []any{kind}
	if len(filter) == 0 && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s records: %v", ErrUnavailable, kind, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", kind, err)
		}

		var rec Record
		if err := json.Unmarshal([]byte(body), &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record %s: %w", kind, id, err)
		}

		if !matches(rec, filter) {
			continue
		}

		rec["id"] = id
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating %s records: %v", ErrUnavailable, kind, err)
	}

	return records, nil
}

// matches reports whether every filter field equals the record's value.
func matches(rec Record, filter Filter) bool {
	for field, want := range filter {
		got, ok := rec[field]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
