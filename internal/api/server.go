// Package api exposes the search pipeline over HTTP.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/metrics"
	"github.com/nekomori/animeseek/internal/provider"
)

// Server implements the API
type Server struct {
	provider *provider.Provider
	metrics  *metrics.Metrics
	log      *logging.Logger
}

// NewServer creates a new API server. met and log may be nil.
func NewServer(p *provider.Provider, met *metrics.Metrics, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	return &Server{provider: p, metrics: met, log: log}
}

// Handler returns the HTTP handler with CORS and API routes
func (s *Server) Handler() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Mount("/api", s.apiRouter())

	return r
}

// apiRouter returns a router with API routes
func (s *Server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Get("/health", s.HandleHealth)
	r.Get("/search", s.HandleSearch)
	r.Get("/resolve", s.HandleResolve)
	r.Post("/parse", s.HandleParse)
	r.Get("/metrics", s.HandleMetrics)
	r.Post("/metrics/reset", s.HandleMetricsReset)

	return r
}
