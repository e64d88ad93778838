package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/propagation"

	"github.com/curaious/linkfinder/internal/api/controllers"
	"github.com/curaious/linkfinder/internal/logger"
	"github.com/curaious/linkfinder/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

var tracePropagator = propagation.TraceContext{}

// knownPaths bounds the path label of the request counter.
var knownPaths = map[string]bool{
	"/api/get-url": true,
	"/api/health":  true,
	"/metrics":     true,
}

func (s *Server) initRoutes() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/api/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		_, _ = ctx.Write([]byte("OK"))
	})

	r.GET("/metrics", metrics.Handler())

	controllers.RegisterLinksRoutes(r, s.services)

	return s.withMiddlewares(r.Handler)
}

func (s *Server) withMiddlewares(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		s.applyCORS(ctx)
		if string(ctx.Method()) == fasthttp.MethodOptions {
			ctx.SetStatusCode(fasthttp.StatusNoContent)
			return
		}

		requestID := string(ctx.Request.Header.Peek(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Response.Header.Set(requestIDHeader, requestID)

		h := http.Header{}
		ctx.Request.Header.VisitAll(func(k, v []byte) {
			h[string(k)] = []string{string(v)}
		})
		stdCtx := tracePropagator.Extract(s.baseCtx, propagation.HeaderCarrier(h))
		stdCtx = logger.WithRequestID(stdCtx, requestID)
		ctx.SetUserValue(controllers.RequestContextKey, stdCtx)

		start := time.Now()
		method := string(ctx.Method())
		requestURI := string(ctx.RequestURI())
		slog.InfoContext(stdCtx, "Started processing", slog.String("method", method), slog.String("request_uri", requestURI))

		next(ctx)

		path := string(ctx.Path())
		if !knownPaths[path] {
			path = "other"
		}
		metrics.ObserveHTTPRequest(method, path, ctx.Response.StatusCode())

		slog.InfoContext(stdCtx, "Finished processing",
			slog.String("method", method),
			slog.String("request_uri", requestURI),
			slog.Int("status", ctx.Response.StatusCode()),
			slog.Duration("duration", time.Since(start)))
	}
}

func (s *Server) applyCORS(ctx *fasthttp.RequestCtx) {
	headers := &ctx.Response.Header
	origin := string(ctx.Request.Header.Peek("Origin"))
	if origin == "" {
		origin = "*"
	}
	headers.Set("Access-Control-Allow-Origin", origin)
	headers.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	headers.Set("Access-Control-Allow-Headers", s.conf.ALLOWED_HEADERS)
	headers.Set("Access-Control-Expose-Headers", requestIDHeader)
}
