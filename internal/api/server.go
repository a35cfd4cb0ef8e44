package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vitalstack/vitals-engine/internal/config"
)

// Server wraps the HTTP server and lifecycle helpers.
type Server struct {
	cfg    config.ServerConfig
	router *chi.Mux
	server *http.Server
	logger *slog.Logger
}

// NewServer constructs an HTTP server bound to the configured address.
func NewServer(cfg config.ServerConfig, logger *slog.Logger, handlers *Handlers) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", handlers.HandleHealth)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/monitor", handlers.HandleMonitor)
		r.Get("/trends/{vitalType}", handlers.HandleTrends)
	})

	return &Server{
		cfg:    cfg,
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:         cfg.Address,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start serves incoming requests until Shutdown is invoked.
func (s *Server) Start() error {
	s.logger.Info("http server listening", slog.String("address", s.cfg.Address))
	return s.server.ListenAndServe()
}

// Shutdown attempts a graceful shutdown within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}
