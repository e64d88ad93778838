package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandlerAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "json", "info"))

	ctx := WithRequestID(context.Background(), "req-1")
	log.With(slog.String("component", "links")).InfoContext(ctx, "Received image URL")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "links", record["component"])
	assert.Equal(t, "Received image URL", record["msg"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "text", "warn"))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
