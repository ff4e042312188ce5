package telemetry

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteHTTPRequest records a handled HTTP request.
//
// The write is non-blocking; data is batched and sent asynchronously.
// Status is tagged as a string to keep cardinality low while allowing
// per-status queries.
//
// Parameters:
//   - method: HTTP method (GET, POST, ...)
//   - path: request path as routed (e.g. "/projects")
//   - status: response status code
//   - duration: handler wall time
func (c *Client) WriteHTTPRequest(method, path string, status int, duration time.Duration) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"http_request",
		map[string]string{
			"method": method,
			"path":   path,
			"status": strconv.Itoa(status),
		},
		map[string]interface{}{
			"duration_ms": float64(duration.Microseconds()) / 1000.0,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteRecordCreated records a successful record creation for a kind.
//
// Used to track write volume per collection without touching the store.
func (c *Client) WriteRecordCreated(kind string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"record_created",
		map[string]string{
			"kind": kind,
		},
		map[string]interface{}{
			"count": 1,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	c.writeAPI.WritePoint(write.NewPoint(measurement, tags, fields, time.Now()))
}
