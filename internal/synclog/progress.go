package synclog

import (
	"context"
	"sort"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// TimeRange selects how far back progress queries look.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"    // last 7 days
	RangeMonth   TimeRange = "month"   // last calendar month
	RangeQuarter TimeRange = "quarter" // last 3 calendar months
)

// ParseTimeRange maps a user-supplied string onto a TimeRange.
func ParseTimeRange(s string) (TimeRange, bool) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeQuarter:
		return TimeRange(s), true
	default:
		return "", false
	}
}

// GetProgressData returns the entries for one exercise within the given time
// range, sorted by date ascending. It reads through GetWorkoutHistory, so the
// remote-then-local fallback and its event narration apply here too. Entries
// with unparseable dates are dropped.
func (s *Synchronizer) GetProgressData(ctx context.Context, exerciseID string, rng TimeRange) []models.WorkoutLogEntry {
	cutoff := cutoffFor(rng, s.now())

	type dated struct {
		entry models.WorkoutLogEntry
		at    time.Time
	}
	var matched []dated
	for _, e := range s.GetWorkoutHistory(ctx, "") {
		if e.ExerciseID != exerciseID {
			continue
		}
		at, err := models.ParseEntryDate(e.Date)
		if err != nil || at.Before(cutoff) {
			continue
		}
		matched = append(matched, dated{e, at})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].at.Before(matched[j].at)
	})

	out := make([]models.WorkoutLogEntry, len(matched))
	for i, d := range matched {
		out[i] = d.entry
	}
	return out
}

func cutoffFor(rng TimeRange, now time.Time) time.Time {
	switch rng {
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeQuarter:
		return now.AddDate(0, -3, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}
