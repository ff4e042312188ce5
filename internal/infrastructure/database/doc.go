// Package database provides SQLite connectivity for the SOLA backend.
//
// It wraps database/sql with lifecycle management (open at process start,
// close at shutdown), WAL-mode configuration, health checks, and a simple
// embedded-migration runner.
//
// # Usage
//
//	db, err := database.Open(ctx, database.Config{
//	    Path:        "./data/sola.db",
//	    WALMode:     true,
//	    BusyTimeout: 5,
//	})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The wrapped *sql.DB is safe for concurrent use. The pool is restricted to
// a single connection because SQLite supports only one writer at a time.
package database
