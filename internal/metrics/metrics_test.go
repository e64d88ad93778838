package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestObserveScriptRun(t *testing.T) {
	before := testutil.ToFloat64(scriptRuns.WithLabelValues(OutcomeParseFailure))
	ObserveScriptRun(OutcomeParseFailure, 1500*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(scriptRuns.WithLabelValues(OutcomeParseFailure)))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveHTTPRequest("POST", "/api/get-url", 200)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/metrics")
	Handler()(&ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `linkfinder_http_requests_total{method="POST",path="/api/get-url",status="200"}`)
}
