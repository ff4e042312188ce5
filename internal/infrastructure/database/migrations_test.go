package database

import (
	"context"
	"testing"
	"testing/fstest"
)

// withMigrations substitutes MigrationsFS for the duration of a test.
func withMigrations(t *testing.T, fsys fstest.MapFS) {
	t.Helper()

	saved := MigrationsFS
	MigrationsFS = fsys
	t.Cleanup(func() { MigrationsFS = saved })
}

func TestMigrate(t *testing.T) {
	withMigrations(t, fstest.MapFS{
		"001_create_things.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY)"),
		},
		"002_add_index.sql": &fstest.MapFile{
			Data: []byte("CREATE INDEX idx_things_id ON things (id)"),
		},
	})

	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// Both migrations recorded.
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if count != 2 {
		t.Errorf("applied %d migrations, want 2", count)
	}

	// Migrated schema is usable.
	if _, err := db.ExecContext(ctx, "INSERT INTO things (id) VALUES ('a')"); err != nil {
		t.Errorf("inserting into migrated table: %v", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	withMigrations(t, fstest.MapFS{
		"001_create_things.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY)"),
		},
	})

	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate() error = %v", err)
	}
	// Second run must skip the applied migration; re-running the CREATE
	// would fail since the table exists.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestMigrate_FailureRollsBack(t *testing.T) {
	withMigrations(t, fstest.MapFS{
		"001_create_things.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY)"),
		},
		"002_broken.sql": &fstest.MapFile{
			Data: []byte("THIS IS NOT SQL"),
		},
	})

	db := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err == nil {
		t.Fatal("Migrate() should fail on broken SQL")
	}

	// The first migration stays applied, the broken one is not recorded.
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("applied %d migrations, want 1", count)
	}
}

func TestMigrate_NoMigrationsRegistered(t *testing.T) {
	saved := MigrationsFS
	MigrationsFS = nil
	t.Cleanup(func() { MigrationsFS = saved })

	db := openTestDB(t)
	if err := db.Migrate(context.Background()); err != nil {
		t.Errorf("Migrate() with no registered migrations should be a no-op, got %v", err)
	}
}

func TestLoadMigrations_BadFilename(t *testing.T) {
	withMigrations(t, fstest.MapFS{
		"badname.sql": &fstest.MapFile{Data: []byte("SELECT 1")},
	})

	if _, err := loadMigrations(); err == nil {
		t.Error("loadMigrations() should reject filenames without a version prefix")
	}
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	withMigrations(t, fstest.MapFS{
		"010_later.sql":  &fstest.MapFile{Data: []byte("SELECT 1")},
		"002_middle.sql": &fstest.MapFile{Data: []byte("SELECT 1")},
		"001_first.sql":  &fstest.MapFile{Data: []byte("SELECT 1")},
		"README.md":      &fstest.MapFile{Data: []byte("ignored")},
	})

	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations() error = %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("got %d migrations, want 3", len(migrations))
	}
	want := []string{"001", "002", "010"}
	for i, m := range migrations {
		if m.Version != want[i] {
			t.Errorf("migrations[%d].Version = %q, want %q", i, m.Version, want[i])
		}
	}
}
