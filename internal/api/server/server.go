package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-api/internal/api/middleware"
	"github.com/feral-file/ff-marketplace-api/internal/api/rest"
	"github.com/feral-file/ff-marketplace-api/internal/api/shared/executor"
	"github.com/feral-file/ff-marketplace-api/internal/dataloader"
	"github.com/feral-file/ff-marketplace-api/internal/identity"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
	"github.com/feral-file/ff-marketplace-api/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	LoaderWait     time.Duration
	LoaderMaxBatch int
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	identity   identity.Client
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, identity identity.Client) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		identity: identity,
	}
}

// Handler builds the router with middleware and routes
func (s *Server) Handler() http.Handler {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))
	router.Use(middleware.Loaders(s.store, s.identity, s.loaderOptions()...))

	// Create shared executor
	exec := executor.NewExecutor(s.store, s.identity)

	// Setup REST routes
	rest.SetupRoutes(router, rest.NewHandler(exec))

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.InfoCtx(ctx, "Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.InfoCtx(ctx, "Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

func (s *Server) loaderOptions() []dataloader.Option {
	var opts []dataloader.Option
	if s.config.LoaderWait > 0 {
		opts = append(opts, dataloader.WithWait(s.config.LoaderWait))
	}
	if s.config.LoaderMaxBatch > 0 {
		opts = append(opts, dataloader.WithMaxBatch(s.config.LoaderMaxBatch))
	}
	return opts
}
