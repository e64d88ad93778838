package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestFileProviderWritesSpans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.txt")
	shutdown := NewProvider(Options{ServiceName: "linkfinder-test", TracesFile: path})

	_, span := otel.Tracer("test").Start(context.Background(), "script.run")
	span.End()
	shutdown()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "script.run")
	assert.Contains(t, string(data), "linkfinder-test")
}

func TestNoExporterIsNoop(t *testing.T) {
	shutdown := NewProvider(Options{})
	assert.NotPanics(t, shutdown)
}
