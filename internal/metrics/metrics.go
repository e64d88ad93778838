// Package metrics exposes Prometheus collectors for script runs and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "linkfinder"

// Script run outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeExitFailure  = "exit_failure"
	OutcomeEmptyOutput  = "empty_output"
	OutcomeParseFailure = "parse_failure"
	OutcomeStartFailure = "start_failure"
	OutcomeTimeout      = "timeout"
)

var (
	scriptRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "script_runs_total",
		Help:      "Script runs by outcome.",
	}, []string{"outcome"})

	scriptDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "script_duration_seconds",
		Help:      "Wall time of script runs.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})
)

func ObserveScriptRun(outcome string, d time.Duration) {
	scriptRuns.WithLabelValues(outcome).Inc()
	if d > 0 {
		scriptDuration.Observe(d.Seconds())
	}
}

func ObserveHTTPRequest(method, path string, status int) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}
