package record

import (
	"context"
	"fmt"
)

// collectionPreviewLimit caps the number of collection names in a report.
const collectionPreviewLimit = 10

// Report is the diagnostic view of the store, served by the /test endpoint.
// Configuration is reported as presence only; values are never revealed.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabasePath     string   `json:"database_path"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Probe reports whether the store is reachable, which collections hold
// data, and whether essential configuration is present.
//
// Probe never fails: every error it encounters is folded into the report.
func (s *SQLiteStore) Probe(ctx context.Context) Report {
	report := Report{
		Backend:          "running",
		Database:         "not configured",
		DatabasePath:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if !s.configured {
		return report
	}
	report.DatabasePath = "set"

	if s.db == nil {
		report.Database = trimmed("unavailable", s.openErr)
		return report
	}

	if err := s.db.HealthCheck(ctx); err != nil {
		report.Database = trimmed("error", err)
		return report
	}
	report.Database = "connected"
	report.ConnectionStatus = "connected"

	collections, err := s.listCollections(ctx)
	if err != nil {
		report.Database = trimmed("connected but error", err)
		return report
	}
	report.Collections = collections

	return report
}

// listCollections returns the names of kinds that currently hold records,
// bounded to a short preview.
func (s *SQLiteStore) listCollections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT kind FROM documents ORDER BY kind LIMIT ?",
		collectionPreviewLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collections := []string{}
	for rows.Next() {
		var kind string
		if err := rows.Scan(&kind); err != nil {
			return nil, err
		}
		collections = append(collections, kind)
	}
	return collections, rows.Err()
}

// errPreviewLen caps error text in reports, mirroring the log redaction
// rule: enough to diagnose, not enough to leak.
const errPreviewLen = 50

// trimmed formats a status with a bounded error preview.
func trimmed(status string, err error) string {
	msg := fmt.Sprintf("%v", err)
	if len(msg) > errPreviewLen {
		msg = msg[:errPreviewLen]
	}
	return status + ": " + msg
}
