package logging

import (
	"log/slog"
	"testing"

	"github.com/solavatzka/sola-backend/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "nonsense", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New(config.LoggingConfig{
		Level:  "debug",
		Format: "text",
		Output: "stderr",
	}, "1.0.0")

	if logger == nil || logger.Logger == nil {
		t.Fatal("New() returned a nil logger")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	logger := New(config.LoggingConfig{Level: "error"}, "1.0.0")

	if logger.Enabled(nil, slog.LevelInfo) {
		t.Error("info should be filtered at error level")
	}
	if !logger.Enabled(nil, slog.LevelError) {
		t.Error("error level should be enabled")
	}
}

func TestWith(t *testing.T) {
	logger := Default()

	child := logger.With("component", "api")
	if child == nil || child.Logger == nil {
		t.Fatal("With() returned a nil logger")
	}
	if child == logger {
		t.Error("With() should return a new logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil || logger.Logger == nil {
		t.Fatal("Default() returned a nil logger")
	}
	if !logger.Enabled(nil, slog.LevelInfo) {
		t.Error("default logger should log at info")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Error("default logger should not log at debug")
	}
}
