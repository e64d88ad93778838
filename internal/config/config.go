package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort              = 3000
	defaultScriptInterpreter = "python3"
	defaultScriptPath        = "python_scripts/find_links.py"
)

type Config struct {
	PORT int

	// External link-extraction script
	SCRIPT_INTERPRETER string
	SCRIPT_PATH        string
	SCRIPT_WORKDIR     string
	SCRIPT_TIMEOUT     time.Duration

	ALLOWED_HEADERS string

	LOG_LEVEL  string
	LOG_FORMAT string

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
	OTEL_SERVICE_NAME           string
	TRACES_FILE                 string
}

func ReadConfig() *Config {
	port := defaultPort
	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && p > 0 && p < 65536 {
			port = p
		} else {
			slog.Warn("Invalid PORT, using default", slog.String("value", portStr), slog.Int("default", defaultPort))
		}
	}

	var timeout time.Duration
	if raw := os.Getenv("SCRIPT_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		} else {
			slog.Warn("Invalid SCRIPT_TIMEOUT, running without timeout", slog.String("value", raw))
		}
	}

	interpreter, ok := os.LookupEnv("SCRIPT_INTERPRETER")
	if !ok {
		interpreter = defaultScriptInterpreter
	}

	return &Config{
		PORT: port,

		SCRIPT_INTERPRETER: interpreter,
		SCRIPT_PATH:        GetEnvOrDefault("SCRIPT_PATH", defaultScriptPath),
		SCRIPT_WORKDIR:     os.Getenv("SCRIPT_WORKDIR"),
		SCRIPT_TIMEOUT:     timeout,

		ALLOWED_HEADERS: GetEnvOrDefault("ALLOWED_HEADERS", "Content-Type"),

		LOG_LEVEL:  GetEnvOrDefault("LOG_LEVEL", "info"),
		LOG_FORMAT: GetEnvOrDefault("LOG_FORMAT", "text"),

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTEL_SERVICE_NAME:           GetEnvOrDefault("OTEL_SERVICE_NAME", "linkfinder"),
		TRACES_FILE:                 os.Getenv("TRACES_FILE"),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.PORT)
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
