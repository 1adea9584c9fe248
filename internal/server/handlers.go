package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/synclog"
)

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	var entry models.WorkoutLogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format(models.EntryDateLayout)
	}
	if entry.ExerciseID == "" {
		entry.ExerciseID = synclog.SlugID(entry.MuscleGroup, entry.ExerciseName)
	}
	if problems := entry.Validate(); len(problems) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": problems})
		return
	}

	persisted := s.sync.LogWorkout(r.Context(), entry)
	status := http.StatusCreated
	if !persisted {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]bool{"persisted": persisted})
}

func (s *Server) handleWorkoutHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.sync.GetWorkoutHistory(r.Context(), r.URL.Query().Get("muscle_group"))
	if entries == nil {
		entries = []models.WorkoutLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	rng := synclog.RangeWeek
	if raw := r.URL.Query().Get("range"); raw != "" {
		var ok bool
		if rng, ok = synclog.ParseTimeRange(raw); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "range must be week, month, or quarter"})
			return
		}
	}

	entries := s.sync.GetProgressData(r.Context(), exercise, rng)
	if entries == nil {
		entries = []models.WorkoutLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("muscle_group")
	level := r.URL.Query().Get("difficulty")
	exercises := catalog.Filter(group, level)
	if exercises == nil {
		exercises = []catalog.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleSyncEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.events.List())
}

func (s *Server) handleClearSyncEvents(w http.ResponseWriter, r *http.Request) {
	s.events.Reset()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"` // seconds; optional
		Expiry      string `json:"expiry"`     // RFC 3339; optional, wins over expires_in
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.AccessToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "access_token required"})
		return
	}

	var expiry time.Time
	switch {
	case body.Expiry != "":
		t, err := time.Parse(time.RFC3339, body.Expiry)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "expiry must be RFC 3339"})
			return
		}
		expiry = t
	case body.ExpiresIn > 0:
		expiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	}

	s.sync.SetToken(body.AccessToken, expiry)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
