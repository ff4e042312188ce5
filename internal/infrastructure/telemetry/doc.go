// Package telemetry provides optional InfluxDB request telemetry for the
// SOLA backend.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched non-blocking writes, and health monitoring. The
// package records HTTP request durations and per-kind record creation
// counts; it is disabled by default and the service runs identically
// without it.
//
// # Usage
//
//	client, err := telemetry.Connect(cfg.Telemetry)
//	if errors.Is(err, telemetry.ErrDisabled) {
//	    client = nil // run without telemetry
//	}
//
//	client.WriteHTTPRequest("POST", "/projects", 201, elapsed)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking; batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned
// directly.
package telemetry
