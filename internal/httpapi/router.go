// Package httpapi wires the HTTP surface of the portfolio site.
// It keeps handlers thin, delegating rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/portfolio/internal/service/guestbook"
	"github.com/tinoosan/portfolio/internal/service/likes"
)

const (
	guestbookMethods = "GET, POST, DELETE, OPTIONS"
	likesMethods     = "GET, POST, OPTIONS"
	readOnlyMethods  = "GET, OPTIONS"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	guestbook guestbook.Service
	likes     likes.Service
	catalog   Catalog
	// checked by /readyz when they implement ReadyChecker
	backends []any
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger is used by request logging, panic recovery and error reporting.
func New(gbStore guestbook.Store, likeStore likes.Store, catalog Catalog, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	// metrics wraps recoverer so recovered panics are counted as 500s
	r.Use(metricsMiddleware)
	r.Use(recoverer(logger))

	s := &Server{
		guestbook: guestbook.New(gbStore),
		likes:     likes.New(likeStore),
		catalog:   catalog,
		backends:  []any{gbStore, likeStore},
		rt:        r,
		log:       logger,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route middleware.
func (s *Server) routes() {
	s.rt.NotFound(func(w http.ResponseWriter, r *http.Request) { notFound(w, "not found") })
	s.rt.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed", "method_not_allowed")
	})

	s.rt.Route("/api", func(r chi.Router) {
		r.Use(cors)

		r.Get("/guestbook", s.listGuestbook)
		r.Post("/guestbook", s.createGuestbookEntry)
		r.Delete("/guestbook", s.deleteGuestbookEntry)
		r.Delete("/guestbook/{id}", s.deleteGuestbookEntry)
		r.Options("/guestbook", preflight)
		r.Options("/guestbook/{id}", preflight)

		r.Get("/likes", s.getLikes)
		r.Post("/likes", s.toggleLike)
		r.Options("/likes", preflight)

		r.Get("/profile", s.getProfile)
		r.Get("/projects", s.listProjects)
		r.Get("/recommendations", s.getRecommendation)
		r.Options("/profile", preflight)
		r.Options("/projects", preflight)
		r.Options("/recommendations", preflight)
	})
	// Health (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
