package logger

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf strings.Builder
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
		Level:       slog.LevelDebug,
	})

	log.Info("search completed", "category", "movies", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "search completed")
	assert.Contains(t, out, "category=movies")
	assert.Contains(t, out, "count=3")
}

func TestNew_JSONFormatInProduction(t *testing.T) {
	var buf strings.Builder
	log := New(Config{
		Writer:      &buf,
		Environment: "production",
		Level:       slog.LevelInfo,
	})

	log.Info("started", "port", "8080")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), "expected JSON output, got %q", out)
	assert.Contains(t, out, `"port":"8080"`)
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
		Level:       slog.LevelWarn,
	})

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}
