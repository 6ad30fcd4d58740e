package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orbitwatch/debris-tracker/internal/analytics"
	"github.com/orbitwatch/debris-tracker/internal/api/middleware"
	"github.com/orbitwatch/debris-tracker/internal/api/rest"
	"github.com/orbitwatch/debris-tracker/internal/batch"
	"github.com/orbitwatch/debris-tracker/internal/catalog"
	"github.com/orbitwatch/debris-tracker/internal/identity"
	"github.com/orbitwatch/debris-tracker/internal/ledger"
	"github.com/orbitwatch/debris-tracker/internal/lifecycle"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/ratelimit"
	"github.com/orbitwatch/debris-tracker/internal/search"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Auth         middleware.AuthConfig
}

// Services bundles the domain services the API exposes
type Services struct {
	Identity  *identity.Service
	Catalog   *catalog.Service
	Lifecycle *lifecycle.Manager
	Ledger    *ledger.Mirror
	Batch     *batch.Engine
	Analytics *analytics.Engine
	Search    *search.Service
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	services   Services
	limiter    ratelimit.Limiter
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, services Services, limiter ratelimit.Limiter) *Server {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &Server{
		config:   cfg,
		services: services,
		limiter:  limiter,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())
	router.Use(middleware.RateLimit(s.limiter))

	// Create REST handler
	restHandler := rest.NewHandler(
		s.services.Identity,
		s.services.Catalog,
		s.services.Lifecycle,
		s.services.Ledger,
		s.services.Batch,
		s.services.Analytics,
		s.services.Search,
	)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
