package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		enable slog.Level
		off    slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"warn level", "WARN", slog.LevelWarn, slog.LevelInfo},
		{"default info", "", slog.LevelInfo, slog.LevelDebug},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			assert.True(t, logger.Enabled(ctx, tt.enable))
			assert.False(t, logger.Enabled(ctx, tt.off))
		})
	}
}

func TestWithKeepsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info").With("component", "backend")
	logger.Info("call", "status", 200)

	assert.Contains(t, buf.String(), `"component":"backend"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
