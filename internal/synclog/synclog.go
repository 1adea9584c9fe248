// Package synclog orchestrates workout log persistence: it writes and reads
// entries against the remote spreadsheet store with transparent fallback to
// the local durable store, narrating every step through the diagnostic event
// log. Public operations never return errors; callers always get a usable
// result and read the narration from the event log.
package synclog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/sheets"
	"github.com/claude/liftlog/internal/store"
)

// Durable store keys owned by the synchronizer.
const (
	historyKey     = "workout_logs"
	tokenKey       = "auth_token"
	tokenExpiryKey = "auth_token_expiry"
)

// Event source tags.
const (
	sourceSync   = "synchronizer"
	sourceSheets = "sheets"
	sourceLocal  = "local"
)

// Config carries the remote-store credentials and target. A zero Config (or
// a nil sheets client) puts the synchronizer in local-only mode.
type Config struct {
	SheetName   string
	APIKey      string // read-only key for unauthenticated fetches
	BearerToken string
	TokenExpiry time.Time
}

// Synchronizer is the dual-backend workout log store.
type Synchronizer struct {
	client *sheets.Client
	sheet  string
	apiKey string
	store  store.Store
	events *eventlog.Log
	log    *slog.Logger
	now    func() time.Time

	mu          sync.Mutex // guards token state and local read-modify-write
	token       string
	tokenExpiry time.Time
}

// New creates a Synchronizer. When cfg carries no bearer token, a previously
// cached token is loaded from the store.
func New(client *sheets.Client, cfg Config, st store.Store, events *eventlog.Log, log *slog.Logger) *Synchronizer {
	s := &Synchronizer{
		client:      client,
		sheet:       cfg.SheetName,
		apiKey:      cfg.APIKey,
		store:       st,
		events:      events,
		log:         log,
		now:         time.Now,
		token:       cfg.BearerToken,
		tokenExpiry: cfg.TokenExpiry,
	}
	if s.token == "" && st != nil {
		if tok, ok, err := st.Get(tokenKey); err == nil && ok && tok != "" {
			s.token = tok
			if raw, ok, err := st.Get(tokenExpiryKey); err == nil && ok {
				if exp, err := time.Parse(time.RFC3339, raw); err == nil {
					s.tokenExpiry = exp
				}
			}
		}
	}
	return s
}

// SetToken installs a bearer token with its expiry and caches it in the
// durable store best-effort.
func (s *Synchronizer) SetToken(token string, expiry time.Time) {
	s.mu.Lock()
	s.token = token
	s.tokenExpiry = expiry
	if s.store != nil {
		if err := s.store.Set(tokenKey, token); err != nil {
			s.log.Warn("failed to cache token", "error", err)
		}
		if err := s.store.Set(tokenExpiryKey, expiry.Format(time.RFC3339)); err != nil {
			s.log.Warn("failed to cache token expiry", "error", err)
		}
	}
	s.mu.Unlock()

	s.events.Record(eventlog.StatusInfo, sourceSync, "token_update", "access token updated", nil)
}

// validToken reports whether a bearer token usable for appends is present. A
// zero expiry means the expiry is unknown; the token is used until a remote
// call rejects it.
func (s *Synchronizer) validToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", false
	}
	if !s.tokenExpiry.IsZero() && !s.now().Before(s.tokenExpiry) {
		return "", false
	}
	return s.token, true
}

// LogWorkout persists one entry: best-effort remote append when a valid
// bearer token is present, and always an append to the local history. It
// returns true unless both writes failed.
func (s *Synchronizer) LogWorkout(ctx context.Context, entry models.WorkoutLogEntry) bool {
	s.events.Record(eventlog.StatusInfo, sourceSync, "log_workout",
		fmt.Sprintf("logging %s (%d sets)", entry.ExerciseName, len(entry.Sets)),
		map[string]any{"exerciseId": entry.ExerciseID, "muscleGroup": entry.MuscleGroup})

	rows := FlattenEntry(entry)

	remoteOK := false
	if token, ok := s.validToken(); ok && s.client != nil {
		if err := s.client.AppendRows(ctx, s.sheet, token, rows); err != nil {
			s.events.Record(eventlog.StatusError, sourceSheets, "append",
				"remote append failed: "+err.Error(), nil)
			s.log.Warn("remote append failed", "error", err)
		} else {
			remoteOK = true
			s.events.Record(eventlog.StatusSuccess, sourceSheets, "append",
				fmt.Sprintf("appended %d rows to %s", len(rows), s.sheet), nil)
		}
	} else {
		s.events.Record(eventlog.StatusInfo, sourceSheets, "append",
			"remote write skipped: no valid access token", nil)
	}

	// The local copy is unconditional: it is the only persistence that needs
	// neither network nor credential.
	localOK := true
	if err := s.appendLocal(entry); err != nil {
		localOK = false
		s.events.Record(eventlog.StatusError, sourceLocal, "write",
			"local write failed: "+err.Error(), nil)
		s.log.Warn("local write failed", "error", err)
	} else {
		s.events.Record(eventlog.StatusSuccess, sourceLocal, "write",
			"workout saved to local history", nil)
	}

	return remoteOK || localOK
}

// GetWorkoutHistory returns all logged entries, preferring the remote store
// when a credential allows reading it and falling back to the local history
// on any failure or when the remote store holds no data rows. An optional
// muscle-group filter is applied with exact matching. This never fails: the
// worst case is an empty slice.
func (s *Synchronizer) GetWorkoutHistory(ctx context.Context, muscleGroup string) []models.WorkoutLogEntry {
	token, tokenOK := s.validToken()
	remote := s.client != nil && (tokenOK || s.apiKey != "")

	target := "local store"
	if remote {
		target = "remote store"
	}
	s.events.Record(eventlog.StatusInfo, sourceSync, "get_history",
		"reading workout history from "+target, nil)

	if remote {
		rows, err := s.client.ReadRows(ctx, s.sheet, s.apiKey, token)
		switch {
		case err != nil:
			s.events.Record(eventlog.StatusError, sourceSheets, "read",
				"remote read failed: "+err.Error()+"; falling back to local history", nil)
			s.log.Warn("remote read failed", "error", err)
		case len(rows) <= 1:
			// Header row only (or nothing): treat as no data.
			s.events.Record(eventlog.StatusInfo, sourceSheets, "read",
				"remote store has no data rows; falling back to local history", nil)
		default:
			entries := ParseRows(rows)
			filtered := filterByMuscleGroup(entries, muscleGroup)
			s.events.Record(eventlog.StatusSuccess, sourceSheets, "read",
				fmt.Sprintf("loaded %d entries from remote store (%d after filter)",
					len(entries), len(filtered)), nil)
			return filtered
		}
	}

	entries, err := s.localHistory()
	if err != nil {
		s.events.Record(eventlog.StatusError, sourceLocal, "read",
			"local read failed: "+err.Error(), nil)
		s.log.Warn("local read failed", "error", err)
		return []models.WorkoutLogEntry{}
	}

	filtered := filterByMuscleGroup(entries, muscleGroup)
	s.events.Record(eventlog.StatusSuccess, sourceLocal, "read",
		fmt.Sprintf("loaded %d entries from local history (%d after filter)",
			len(entries), len(filtered)), nil)
	return filtered
}

// appendLocal appends entry to the full local history with a
// read-modify-write of the JSON list. The mutex keeps concurrent appends
// from dropping each other's writes.
func (s *Synchronizer) appendLocal(entry models.WorkoutLogEntry) error {
	if s.store == nil {
		return fmt.Errorf("no local store configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var history []models.WorkoutLogEntry
	raw, ok, err := s.store.Get(historyKey)
	if err != nil {
		return fmt.Errorf("reading local history: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			return fmt.Errorf("parsing local history: %w", err)
		}
	}

	history = append(history, entry)
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding local history: %w", err)
	}
	if err := s.store.Set(historyKey, string(data)); err != nil {
		return fmt.Errorf("writing local history: %w", err)
	}
	return nil
}

// localHistory reads the full local history list.
func (s *Synchronizer) localHistory() ([]models.WorkoutLogEntry, error) {
	if s.store == nil {
		return nil, nil
	}

	raw, ok, err := s.store.Get(historyKey)
	if err != nil {
		return nil, fmt.Errorf("reading local history: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var history []models.WorkoutLogEntry
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("parsing local history: %w", err)
	}
	return history, nil
}

func filterByMuscleGroup(entries []models.WorkoutLogEntry, group string) []models.WorkoutLogEntry {
	if group == "" {
		return entries
	}
	var out []models.WorkoutLogEntry
	for _, e := range entries {
		if e.MuscleGroup == group {
			out = append(out, e)
		}
	}
	return out
}
