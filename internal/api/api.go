package api

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/curaious/linkfinder/internal/config"
	"github.com/curaious/linkfinder/internal/services"
)

// Server is the HTTP server fronting the link extraction script.
type Server struct {
	srv      *fasthttp.Server
	addr     string
	conf     *config.Config
	services *services.Services

	// baseCtx is the parent of every request context; cancelling it kills
	// in-flight scripts.
	baseCtx context.Context
	cancel  context.CancelFunc
}

// New creates a new server wired to the configured services.
func New(conf *config.Config, svc *services.Services) *Server {
	baseCtx, cancel := context.WithCancel(context.Background())

	s := &Server{
		srv: &fasthttp.Server{
			Name:                  "linkfinder",
			NoDefaultServerHeader: true,
		},
		addr:     conf.Addr(),
		conf:     conf,
		services: svc,
		baseCtx:  baseCtx,
		cancel:   cancel,
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Handler returns the root request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.srv.Handler
}

// Serve accepts connections on ln until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Start the rest server and block until SIGINT or SIGTERM.
func (s *Server) Start() {
	slog.Info("Starting REST server...", slog.String("addr", s.addr))
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("REST server started!")

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	// Create a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.Shutdown(ctx)
}

// Shutdown stops accepting connections, waits for in-flight requests until ctx
// ends, then kills any scripts still running.
func (s *Server) Shutdown(ctx context.Context) {
	slog.Info("Gracefully shutting down REST server...")
	if err := s.srv.ShutdownWithContext(ctx); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	s.cancel()
	slog.Info("REST server shutdown!")
}
