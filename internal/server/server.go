package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/synclog"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	sync   *synclog.Synchronizer
	events *eventlog.Log
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(sync *synclog.Synchronizer, events *eventlog.Log, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		sync:   sync,
		events: events,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Write endpoints (API key required when one is configured)
	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/api/v1/workouts", s.handleLogWorkout)
		r.Post("/api/v1/auth/token", s.handleSetToken)
		r.Delete("/api/v1/sync/events", s.handleClearSyncEvents)
	})

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/workouts", s.handleWorkoutHistory)
	s.router.Get("/api/v1/progress", s.handleProgress)
	s.router.Get("/api/v1/exercises", s.handleExercises)
	s.router.Get("/api/v1/sync/events", s.handleSyncEvents)
	s.router.Get("/api/v1/sync/events/ws", s.handleSyncEventsWS)
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
