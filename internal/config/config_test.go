package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SCRIPT_PATH", "SCRIPT_WORKDIR", "SCRIPT_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "OTEL_EXPORTER_OTLP_ENDPOINT", "TRACES_FILE"} {
		t.Setenv(key, "")
	}

	conf := ReadConfig()
	assert.Equal(t, 3000, conf.PORT)
	assert.Equal(t, "0.0.0.0:3000", conf.Addr())
	assert.Equal(t, "python_scripts/find_links.py", conf.SCRIPT_PATH)
	assert.Equal(t, time.Duration(0), conf.SCRIPT_TIMEOUT)
	assert.Equal(t, "info", conf.LOG_LEVEL)
	assert.Equal(t, "text", conf.LOG_FORMAT)
}

func TestReadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SCRIPT_INTERPRETER", "")
	t.Setenv("SCRIPT_PATH", "/opt/find_links")
	t.Setenv("SCRIPT_TIMEOUT", "90s")

	conf := ReadConfig()
	assert.Equal(t, 8081, conf.PORT)
	assert.Equal(t, "", conf.SCRIPT_INTERPRETER, "an explicitly empty interpreter runs the script directly")
	assert.Equal(t, "/opt/find_links", conf.SCRIPT_PATH)
	assert.Equal(t, 90*time.Second, conf.SCRIPT_TIMEOUT)
}

func TestReadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SCRIPT_TIMEOUT", "soon")

	conf := ReadConfig()
	assert.Equal(t, 3000, conf.PORT)
	assert.Equal(t, time.Duration(0), conf.SCRIPT_TIMEOUT)
}
