package server

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/routefs-dev/routefs/pkg/middleware"
	"github.com/routefs-dev/routefs/pkg/router"
)

// Config configures a Server. Zero values fall back to defaults.
type Config struct {
	// Address is the listen address (default "localhost:3000").
	Address string

	// RoutesDir is the routes directory to mount (default "./routes").
	RoutesDir string

	// FS mounts routes from an arbitrary filesystem instead of
	// RoutesDir. Useful for tests and embedded trees.
	FS fs.FS

	// Registry supplies the modules for discovered route files. Required.
	Registry *router.Registry

	// Logger is the structured logger for request and mount diagnostics.
	// Defaults to a disabled logger.
	Logger zerolog.Logger

	// ErrorTranslator overrides the terminal failure handler.
	ErrorTranslator router.ErrorTranslator

	// Metrics enables the Prometheus middleware and serves the
	// collected metrics on GET /metrics.
	Metrics bool

	// Tracing enables the OpenTelemetry middleware. The tracer comes
	// from the global tracer provider.
	Tracing bool

	// DevLog prints every mounted route at startup.
	DevLog bool

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout for the underlying http.Server (default 5s).
	ReadHeaderTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.Address == "" {
		c.Address = "localhost:3000"
	}
	if c.RoutesDir == "" {
		c.RoutesDir = router.DefaultRoot
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 5 * time.Second
	}
}

// Server is an HTTP server serving a mounted routes tree.
type Server struct {
	config     Config
	mux        chi.Router
	table      *router.Table
	log        zerolog.Logger
	httpServer *http.Server
}

// New builds the mux, mounts the routes tree, and returns a server
// ready to Run. Mount failures (unexpressible directory paths,
// duplicate patterns) surface here, before the server ever listens.
func New(config Config) (*Server, error) {
	config.applyDefaults()

	mux := chi.NewRouter()
	mux.Use(middleware.RequestLogger(config.Logger))
	if config.Metrics {
		mux.Use(middleware.Prometheus())
	}
	if config.Tracing {
		mux.Use(middleware.OpenTelemetry())
	}

	opts := []router.Option{
		router.WithRoot(config.RoutesDir),
		router.WithLogger(config.Logger),
		router.WithDevLog(config.DevLog),
	}
	if config.FS != nil {
		opts = append(opts, router.WithFS(config.FS))
	}
	if config.ErrorTranslator != nil {
		opts = append(opts, router.WithErrorTranslator(config.ErrorTranslator))
	}

	table, err := router.Mount(router.NewChiHost(mux), config.Registry, opts...)
	if err != nil {
		return nil, err
	}

	if config.Metrics {
		mux.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	return &Server{
		config: config,
		mux:    mux,
		table:  table,
		log:    config.Logger,
	}, nil
}

// Table returns the mounted route table.
func (s *Server) Table() *router.Table {
	return s.table
}

// ServeHTTP dispatches through the mux, so a Server can be mounted
// inside a larger handler tree or driven by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run starts the server and blocks until shutdown, either from an
// interrupt signal or a listener error.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().
			Str("address", s.config.Address).
			Int("routes", s.table.Len()).
			Msg("server starting")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.log.Info().Msg("shutting down")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.log.Error().Err(err).Msg("shutdown error")
			return err
		}
	}

	s.log.Info().Msg("server shutdown complete")
	return nil
}
