// Package server provides HTTP server management and lifecycle handling for
// the wellness assessment API: router setup, middleware configuration, route
// registration and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitclub/wellness-api/config"
	"github.com/fitclub/wellness-api/handlers"
	"github.com/fitclub/wellness-api/interfaces"
	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/metrics"
)

// Server represents the HTTP server
type Server struct {
	server   *http.Server
	router   chi.Router
	handlers *handlers.HTTPHandler
	config   *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, store interfaces.SessionStore, validator interfaces.Validator) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:   router,
		handlers: handlers.NewHTTPHandler(store, validator),
		config:   cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.Middleware(logging.Logger()))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(RateLimitHandler)
	s.router.Use(metrics.Middleware)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	h := s.handlers

	s.router.Post("/sessions", h.CreateSession)
	s.router.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Put("/profile", h.UpdateProfile)
		r.Put("/body", h.UpdateBody)
		r.Put("/lifestyle", h.UpdateLifestyle)
		r.Put("/goals", h.UpdateGoals)
		r.Put("/flags", h.UpdateFlags)
		r.Post("/referrals", h.AddReferral)
		r.Get("/assessment", h.GetAssessment)
		r.Get("/plan", h.GetPlan)
		r.Post("/plan/select", h.SelectOffer)
		r.Get("/selection", h.GetSelection)
		r.Put("/selection", h.UpdateSelection)
		r.Get("/report", h.ExportReport)
	})

	s.router.Get("/countries", h.ListCountries)
	s.router.Get("/health", h.HealthCheck)
	s.router.Handle("/metrics", promhttp.Handler())
}

// Start starts the server
func (s *Server) Start() error {
	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}
