// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arkodas/mediatrack/internal/core"
	"github.com/arkodas/mediatrack/internal/watchlist"
)

// Server holds the dependencies for our API.
type Server struct {
	app       *core.App
	watchlist *watchlist.Service
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	enricher := watchlist.NewEnricher(app.Catalog())
	return &Server{
		app:       app,
		watchlist: watchlist.NewService(app.Store(), enricher, app.WsHub()),
	}
}

// Watchlist returns the watchlist service instance.
func (s *Server) Watchlist() *watchlist.Service {
	return s.watchlist
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleGetVersion)

		// Catalog routes
		r.Get("/posters", s.handleGetPosters)
		r.Get("/shows", s.handleGetShows)
		r.Get("/shows/{id}", s.handleGetShowDetails)
		r.Get("/anime", s.handleGetAnime)
		r.Get("/anime/filters", s.handleGetAnimeFilters)
		r.Get("/anime/{id}", s.handleGetAnimeDetails)

		// Watchlist routes
		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/", s.handleListWatchlist)
			r.Post("/", s.handleCreateWatchlistItem)
			r.Get("/{id}", s.handleGetWatchlistItem)
			r.Patch("/{id}", s.handlePatchWatchlistItem)
			r.Put("/{id}", s.handlePutWatchlistItem)
			r.Delete("/{id}", s.handleDeleteWatchlistItem)
		})

		// Background jobs
		r.Get("/jobs/status", s.handleGetJobStatus)
		r.Post("/jobs/run", s.handleRunJob)
	})

	// WebSocket for live watchlist and airing updates
	r.Get("/ws/watchlist", s.app.WsHub().ServeWs)

	return r
}
