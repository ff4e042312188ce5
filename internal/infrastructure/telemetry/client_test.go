package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/solavatzka/sola-backend/internal/infrastructure/config"
)

// influxMock is a minimal InfluxDB v2 endpoint that accepts pings and
// captures line-protocol writes.
type influxMock struct {
	mu     sync.Mutex
	writes []string
}

func (m *influxMock) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ping":
			w.WriteHeader(http.StatusNoContent)
		case "/api/v2/write":
			body, _ := io.ReadAll(r.Body)
			m.mu.Lock()
			m.writes = append(m.writes, string(body))
			m.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (m *influxMock) captured() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.writes, "\n")
}

// newTestClient connects a client to a mock InfluxDB server.
func newTestClient(t *testing.T) (*Client, *influxMock) {
	t.Helper()

	mock := &influxMock{}
	srv := httptest.NewServer(mock.handler())
	t.Cleanup(srv.Close)

	client, err := Connect(config.TelemetryConfig{
		Enabled:       true,
		URL:           srv.URL,
		Token:         "test-token",
		Org:           "sola",
		Bucket:        "requests",
		BatchSize:     1,
		FlushInterval: 1,
	})
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return client, mock
}

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(config.TelemetryConfig{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // Connection refused from here on.

	_, err := Connect(config.TelemetryConfig{
		Enabled: true,
		URL:     srv.URL,
		Org:     "sola",
		Bucket:  "requests",
	})
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestWriteHTTPRequest(t *testing.T) {
	client, mock := newTestClient(t)

	client.WriteHTTPRequest(http.MethodGet, "/projects", http.StatusOK, 12*time.Millisecond)
	client.Flush()

	captured := mock.captured()
	if !strings.Contains(captured, "http_request") {
		t.Errorf("captured writes missing measurement: %q", captured)
	}
	for _, tag := range []string{"method=GET", "path=/projects", "status=200"} {
		if !strings.Contains(captured, tag) {
			t.Errorf("captured writes missing tag %q: %q", tag, captured)
		}
	}
	if !strings.Contains(captured, "duration_ms=") {
		t.Errorf("captured writes missing duration field: %q", captured)
	}
}

func TestWriteRecordCreated(t *testing.T) {
	client, mock := newTestClient(t)

	client.WriteRecordCreated("channel")
	client.Flush()

	captured := mock.captured()
	if !strings.Contains(captured, "record_created") {
		t.Errorf("captured writes missing measurement: %q", captured)
	}
	if !strings.Contains(captured, "kind=channel") {
		t.Errorf("captured writes missing kind tag: %q", captured)
	}
}

func TestWritesAfterCloseAreDropped(t *testing.T) {
	client, mock := newTestClient(t)

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	before := mock.captured()
	client.WriteRecordCreated("channel")
	client.Flush()
	if after := mock.captured(); after != before {
		t.Errorf("writes after Close should be dropped, got new data: %q", after)
	}
}

func TestHealthCheck(t *testing.T) {
	client, _ := newTestClient(t)

	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}

	client.Close()
	if err := client.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() after Close = %v, want ErrNotConnected", err)
	}
}

func TestIsConnected(t *testing.T) {
	client, _ := newTestClient(t)

	if !client.IsConnected() {
		t.Error("IsConnected() = false after Connect")
	}
	client.Close()
	if client.IsConnected() {
		t.Error("IsConnected() = true after Close")
	}
}
