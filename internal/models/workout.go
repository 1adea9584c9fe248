package models

import (
	"fmt"
	"time"
)

// WorkoutSet is one unit of repetitions at a given resistance within an entry.
// Order within an entry is significant (set 1, set 2, ...).
type WorkoutSet struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// WorkoutLogEntry is one logged performance of an exercise on a given date.
// Exercise name and muscle group are denormalized so the remote spreadsheet
// stays human-readable without a catalog lookup.
type WorkoutLogEntry struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	MuscleGroup  string       `json:"muscleGroup"`
	Difficulty   string       `json:"difficulty,omitempty"`
	Date         string       `json:"date"`
	Sets         []WorkoutSet `json:"sets"`
}

// Validate checks producer-side invariants before the entry reaches the
// synchronizer. Returns human-readable messages; empty means valid.
func (e WorkoutLogEntry) Validate() []string {
	var errs []string
	if e.ExerciseName == "" {
		errs = append(errs, "exerciseName is required")
	}
	if e.MuscleGroup == "" {
		errs = append(errs, "muscleGroup is required")
	}
	if len(e.Sets) == 0 {
		errs = append(errs, "at least one set is required")
	}
	for i, s := range e.Sets {
		if s.Reps < 0 {
			errs = append(errs, fmt.Sprintf("set %d: reps must be non-negative", i+1))
		}
		if s.Weight < 0 {
			errs = append(errs, fmt.Sprintf("set %d: weight must be non-negative", i+1))
		}
	}
	if e.Date != "" {
		if _, err := ParseEntryDate(e.Date); err != nil {
			errs = append(errs, "date must be an ISO-8601 timestamp")
		}
	}
	return errs
}

// EntryDateLayout is the timestamp format assigned to new entries.
const EntryDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseEntryDate parses an entry date, accepting RFC 3339 with or without
// fractional seconds and bare dates.
func ParseEntryDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}
