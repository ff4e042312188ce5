// SOLA Vatzka Max 65 - music studio backend
//
// This is the main entry point for the SOLA backend: REST endpoints over a
// document store covering channels and messages (chat), projects, devices,
// mocked payment intents, and a mocked assistant reply.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/solavatzka/sola-backend/migrations"

	"github.com/solavatzka/sola-backend/internal/api"
	"github.com/solavatzka/sola-backend/internal/catalog"
	"github.com/solavatzka/sola-backend/internal/infrastructure/config"
	"github.com/solavatzka/sola-backend/internal/infrastructure/database"
	"github.com/solavatzka/sola-backend/internal/infrastructure/logging"
	"github.com/solavatzka/sola-backend/internal/infrastructure/telemetry"
	"github.com/solavatzka/sola-backend/internal/record"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting SOLA backend",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Open the record store. An unconfigured or unreachable database is
	// not fatal: the service still serves diagnostics, schema, and the
	// assistant, and create/list calls fail with a clear 503.
	kinds := catalog.KindNames()
	var store record.Store

	switch {
	case cfg.Database.Path == "":
		log.Warn("database path not configured; record store disabled")
		store = record.NewUnconfigured(kinds)

	default:
		db, openErr := database.Open(ctx, database.Config{
			Path:        cfg.Database.Path,
			WALMode:     cfg.Database.WALMode,
			BusyTimeout: cfg.Database.BusyTimeout,
		})
		if openErr != nil {
			log.Error("opening database failed; record store unavailable", "error", openErr)
			store = record.NewUnavailable(openErr, kinds)
			break
		}
		defer func() {
			log.Info("closing database")
			if closeErr := db.Close(); closeErr != nil {
				log.Error("error closing database", "error", closeErr)
			}
		}()
		log.Info("database connected", "path", cfg.Database.Path)

		if migrateErr := db.Migrate(ctx); migrateErr != nil {
			return fmt.Errorf("running migrations: %w", migrateErr)
		}
		log.Info("database migrations complete")

		store = record.NewSQLiteStore(db, kinds)
	}

	// Optional request telemetry
	var tel *telemetry.Client
	if cfg.Telemetry.Enabled {
		tel, err = telemetry.Connect(cfg.Telemetry)
		switch {
		case errors.Is(err, telemetry.ErrDisabled):
			// Shouldn't happen with Enabled checked above; run without.
		case err != nil:
			log.Warn("telemetry connection failed; continuing without", "error", err)
			tel = nil
		default:
			tel.SetOnError(func(writeErr error) {
				log.Warn("telemetry write failed", "error", writeErr)
			})
			defer func() {
				if closeErr := tel.Close(); closeErr != nil {
					log.Error("error closing telemetry", "error", closeErr)
				}
			}()
			log.Info("telemetry connected", "url", cfg.Telemetry.URL)
		}
	}

	// Start the API server
	server, err := api.New(api.Deps{
		Config:    cfg.API,
		Logger:    log,
		Store:     store,
		Telemetry: tel,
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	log.Info("API server listening",
		"host", cfg.API.Host,
		"port", cfg.API.Port,
	)

	// Block until shutdown signal
	<-ctx.Done()
	log.Info("shutdown signal received")

	if err := server.Close(); err != nil {
		log.Error("error shutting down API server", "error", err)
	}

	log.Info("SOLA backend stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SOLA_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SOLA_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
