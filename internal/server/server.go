package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harish176/placement-portal/internal/bootstrap"
	"github.com/harish176/placement-portal/internal/config"
	"github.com/harish176/placement-portal/internal/db"
	"github.com/harish176/placement-portal/internal/pkg/cache"
	"github.com/harish176/placement-portal/internal/pkg/observability"
)

const shutdownTimeout = 10 * time.Second

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database *db.MongoDB
	cache    *cache.Client
	tracer   func(context.Context) error
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	var shutdownTracer func(context.Context) error
	if cfg.Observability.TracingEnabled {
		shutdownTracer, err = observability.InitTracer(context.Background(), cfg.Observability.ServiceName, cfg.Observability.OTLPEndpoint)
		if err != nil {
			// tracing is optional; keep serving without it
			lgr.Warn().Err(err).Msg("Failed to initialize tracing")
			cfg.Observability.TracingEnabled = false
		}
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)
	setupStaticFileServing(router, cfg, lgr)

	return &Server{
		config:   cfg,
		router:   router,
		database: database,
		cache:    deps.Cache,
		tracer:   shutdownTracer,
		logger:   lgr,
	}, nil
}

// setupStaticFileServing serves uploaded files (company logos) under /uploads.
func setupStaticFileServing(router *gin.Engine, cfg *config.Config, lgr zerolog.Logger) {
	uploadPath := cfg.Server.StoragePath

	if err := os.MkdirAll(uploadPath, 0o755); err != nil {
		lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
		return
	}

	router.Static("/uploads", uploadPath)
	lgr.Info().Str("path", uploadPath).Msg("Static file serving configured for uploads directory")
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:              ":" + s.config.Server.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("mode", s.config.Server.Mode).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.Shutdown(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			errs = append(errs, err)
		}
	}

	if s.database != nil {
		if err := s.database.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Database disconnect error")
			errs = append(errs, err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Redis close error")
		}
	}

	if s.tracer != nil {
		if err := s.tracer(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Tracer shutdown error")
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return errors.Join(errs...)
}
