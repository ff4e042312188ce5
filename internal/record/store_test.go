package record_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/solavatzka/sola-backend/migrations"

	"github.com/solavatzka/sola-backend/internal/infrastructure/database"
	"github.com/solavatzka/sola-backend/internal/record"
)

// testKinds is the closed collection set used by store tests.
var testKinds = []string{"channel", "message", "paymentintent", "project", "device"}

// newTestStore creates a store over a fresh on-disk SQLite database.
func newTestStore(t *testing.T) *record.SQLiteStore {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 1,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return record.NewSQLiteStore(db, testKinds)
}

func TestCreateAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := record.Record{"name": "studio-a", "topic": "late takes"}
	id, err := store.Create(ctx, "channel", rec)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned an empty identifier")
	}

	got, err := store.List(ctx, "channel", nil, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0]["id"] != id {
		t.Errorf("id = %v, want %v", got[0]["id"], id)
	}
	if got[0]["name"] != "studio-a" || got[0]["topic"] != "late takes" {
		t.Errorf("record fields = %v, want original values", got[0])
	}
}

func TestCreate_UniqueIdentifiers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := record.Record{"name": "dup", "connection": "midi"}
	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		id, err := store.Create(ctx, "device", rec)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCreate_DoesNotMutateRecord(t *testing.T) {
	store := newTestStore(t)

	rec := record.Record{"name": "studio-a"}
	if _, err := store.Create(context.Background(), "channel", rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := rec["id"]; ok {
		t.Error("Create() added id to the caller's record")
	}
	if len(rec) != 1 {
		t.Errorf("caller's record mutated: %v", rec)
	}
}

func TestCreate_UnknownKind(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create(context.Background(), "playlist", record.Record{"name": "x"})
	if !errors.Is(err, record.ErrUnknownKind) {
		t.Errorf("Create() error = %v, want ErrUnknownKind", err)
	}
}

func TestList_Filter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, m := range []record.Record{
		{"channel_id": "ch-1", "sender": "ada", "text": "one"},
		{"channel_id": "ch-2", "sender": "lin", "text": "two"},
		{"channel_id": "ch-1", "sender": "ada", "text": "three"},
	} {
		if _, err := store.Create(ctx, "message", m); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := store.List(ctx, "message", record.Filter{"channel_id": "ch-1"}, 50)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, rec := range got {
		if rec["channel_id"] != "ch-1" {
			t.Errorf("record %v does not satisfy the filter", rec)
		}
	}

	// Filter on a value nothing matches.
	got, err = store.List(ctx, "message", record.Filter{"channel_id": "ch-9"}, 50)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
	if got == nil {
		t.Error("List() should return an empty slice, not nil")
	}
}

func TestList_LimitAndOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	titles := []string{"first", "second", "third", "fourth"}
	for _, title := range titles {
		if _, err := store.Create(ctx, "project", record.Record{"title": title}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := store.List(ctx, "project", nil, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Insertion order.
	if got[0]["title"] != "first" || got[1]["title"] != "second" {
		t.Errorf("records out of insertion order: %v", got)
	}
}

func TestList_LimitWithFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, "message", record.Record{
			"channel_id": "ch-1",
			"sender":     "ada",
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := store.List(ctx, "message", record.Filter{"channel_id": "ch-1"}, 3)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d records, want 3", len(got))
	}
}

func TestList_KindsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, "channel", record.Record{"name": "studio-a"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.List(ctx, "device", nil, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("device collection should be empty, got %v", got)
	}
}

func TestUnconfiguredStore(t *testing.T) {
	store := record.NewUnconfigured(testKinds)
	ctx := context.Background()

	if _, err := store.Create(ctx, "channel", record.Record{"name": "x"}); !errors.Is(err, record.ErrNotConfigured) {
		t.Errorf("Create() error = %v, want ErrNotConfigured", err)
	}
	if _, err := store.List(ctx, "channel", nil, 10); !errors.Is(err, record.ErrNotConfigured) {
		t.Errorf("List() error = %v, want ErrNotConfigured", err)
	}
}

func TestUnavailableStore(t *testing.T) {
	store := record.NewUnavailable(errors.New("disk on fire"), testKinds)
	ctx := context.Background()

	_, err := store.Create(ctx, "channel", record.Record{"name": "x"})
	if !errors.Is(err, record.ErrUnavailable) {
		t.Errorf("Create() error = %v, want ErrUnavailable", err)
	}
	if _, err := store.List(ctx, "channel", nil, 10); !errors.Is(err, record.ErrUnavailable) {
		t.Errorf("List() error = %v, want ErrUnavailable", err)
	}
}
