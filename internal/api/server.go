package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aliquigan/invoicegl/internal/config"
	"github.com/aliquigan/invoicegl/internal/pipeline"
)

// Server is the HTTP processing surface. The pipeline holds the shared
// read-only reference table; every request runs through it in isolation.
type Server struct {
	router   chi.Router
	pipeline *pipeline.Pipeline
	stats    *ProcStats
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(p *pipeline.Pipeline, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pipeline: p,
		stats:    NewProcStats(time.Hour),
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints (auth disabled when no key is configured).
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Post("/api/invoices", s.handleProcess)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
