package logging

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
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "production")

	logger.Debug("hidden")
	logger.Info("computed", "mode", "optimal")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "computed", line["msg"])
	assert.Equal(t, "optimal", line["mode"])
}

func TestNew_DevelopmentIsTinted(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "")

	logger.Debug("probe", "q", 10)
	assert.Contains(t, buf.String(), "probe")
	assert.Contains(t, buf.String(), "q=")
	assert.Contains(t, buf.String(), "10")
	assert.Contains(t, buf.String(), "DBG")
}
