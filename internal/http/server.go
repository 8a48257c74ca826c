// Package http provides the API server, its middleware stack, and the
// standalone metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/slalombuild/capabilities/internal/auth/http"
	authUseCase "github.com/slalombuild/capabilities/internal/auth/usecase"
	capabilityHTTP "github.com/slalombuild/capabilities/internal/capability/http"
	capabilityUseCase "github.com/slalombuild/capabilities/internal/capability/usecase"
	"github.com/slalombuild/capabilities/internal/config"
	"github.com/slalombuild/capabilities/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	cfg    *config.Config

	authUseCase         authUseCase.AuthUseCase
	auditLogUseCase     authUseCase.AuditLogUseCase
	capabilityUseCase   capabilityUseCase.CapabilityUseCase
	registrationUseCase capabilityUseCase.RegistrationUseCase

	meterProvider metric.MeterProvider
}

// NewServer creates a new API server with its full route table.
// meterProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	authUC authUseCase.AuthUseCase,
	auditLogUC authUseCase.AuditLogUseCase,
	capabilityUC capabilityUseCase.CapabilityUseCase,
	registrationUC capabilityUseCase.RegistrationUseCase,
	meterProvider metric.MeterProvider,
) *Server {
	s := &Server{
		logger:              logger,
		cfg:                 cfg,
		authUseCase:         authUC,
		auditLogUseCase:     auditLogUC,
		capabilityUseCase:   capabilityUC,
		registrationUseCase: registrationUC,
		meterProvider:       meterProvider,
	}

	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the Gin engine with middleware and the route table.
func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()

	// Global middleware. Request ids are UUIDv7 so audit entries can be
	// correlated with access logs.
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(RequestIDContextMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.cfg.MetricsEnabled && s.meterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.cfg.MetricsNamespace))
	}

	authHandler := authHTTP.NewAuthHandler(s.authUseCase, s.logger)
	auditLogHandler := authHTTP.NewAuditLogHandler(s.auditLogUseCase, s.logger)
	capabilityHandler := capabilityHTTP.NewCapabilityHandler(s.capabilityUseCase, s.logger)
	registrationHandler := capabilityHTTP.NewRegistrationHandler(s.registrationUseCase, s.logger)

	// Probes
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Public routes. Login is rate limited per client IP since it runs
	// before any user identity is established.
	loginHandlers := make([]gin.HandlerFunc, 0, 2)
	if s.cfg.RateLimitLoginEnabled {
		loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
			s.cfg.RateLimitLoginRequestsPerSec,
			s.cfg.RateLimitLoginBurst,
			s.logger,
		))
	}
	loginHandlers = append(loginHandlers, authHandler.LoginHandler)
	router.POST("/auth/login", loginHandlers...)

	router.GET("/capabilities", capabilityHandler.ListHandler)
	router.GET("/capabilities/:name", capabilityHandler.GetHandler)

	// Authenticated routes, rate limited per user email
	authenticated := router.Group("/")
	authenticated.Use(authHTTP.AuthenticationMiddleware(s.authUseCase, s.logger))
	if s.cfg.RateLimitEnabled {
		authenticated.Use(authHTTP.RateLimitMiddleware(
			s.cfg.RateLimitRequestsPerSec,
			s.cfg.RateLimitBurst,
			s.logger,
		))
	}
	authenticated.GET("/auth/me", authHandler.MeHandler)
	authenticated.POST("/capabilities/:name/register", registrationHandler.RegisterHandler)

	// Admin-only routes
	admin := authenticated.Group("/")
	admin.Use(authHTTP.RequireAdminMiddleware(s.logger))
	admin.DELETE("/capabilities/:name/unregister", registrationHandler.UnregisterHandler)
	admin.GET("/audit/logs", auditLogHandler.ListHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the in-memory catalog is seeded and
// queryable.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.capabilityUseCase == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"catalog": "error"},
		})
		return
	}

	if _, err := s.capabilityUseCase.List(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"catalog": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"catalog": "ok"},
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
