package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_Production(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "production", "info")

	logger.Debug("hidden")
	logger.With("table", "listings").Info("Model validation failed", "errors", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Model validation failed", entry["msg"])
	assert.Equal(t, "listings", entry["table"])
	assert.EqualValues(t, 2, entry["errors"])
}

func TestLogRequest_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "production", "warn")

	logger.LogRequest("GET", "/health", 200, "1ms")
	assert.Zero(t, buf.Len())

	logger.LogRequest("POST", "/api/v1/listings", 422, "2ms")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestToSlogLogger(t *testing.T) {
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, base, ToSlogLogger(NewSlogLogger(base)))
}
