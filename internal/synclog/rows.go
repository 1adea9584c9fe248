package synclog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// Sheet column positions, matching sheets.HeaderRow.
const (
	colDate = iota
	colExerciseName
	colMuscleGroup
	colSetNumber
	colReps
	colWeight
	colDifficulty
	colNotes
)

// FlattenEntry expands one log entry into sheet rows, one row per set with a
// 1-based set ordinal. The notes column is left empty.
func FlattenEntry(entry models.WorkoutLogEntry) [][]string {
	rows := make([][]string, 0, len(entry.Sets))
	for i, set := range entry.Sets {
		rows = append(rows, []string{
			entry.Date,
			entry.ExerciseName,
			entry.MuscleGroup,
			strconv.Itoa(i + 1),
			strconv.Itoa(set.Reps),
			strconv.FormatFloat(set.Weight, 'f', -1, 64),
			entry.Difficulty,
			"",
		})
	}
	return rows
}

// ParseRows reconstructs log entries from a sheet values grid. The first row
// is the header and is skipped. Rows sharing a (date, exercise name) pair are
// grouped into one entry, in first-seen order, with each row contributing one
// set. Malformed numeric cells degrade to zero values instead of failing.
func ParseRows(rows [][]string) []models.WorkoutLogEntry {
	type groupKey struct{ date, name string }

	entries := []models.WorkoutLogEntry{}
	if len(rows) == 0 {
		return entries
	}
	index := make(map[groupKey]int)

	for _, row := range rows[1:] {
		date := cell(row, colDate)
		name := cell(row, colExerciseName)
		if date == "" && name == "" {
			continue
		}

		key := groupKey{date, name}
		i, ok := index[key]
		if !ok {
			group := cell(row, colMuscleGroup)
			i = len(entries)
			index[key] = i
			entries = append(entries, models.WorkoutLogEntry{
				ExerciseID:   SlugID(group, name),
				ExerciseName: name,
				MuscleGroup:  group,
				Difficulty:   cell(row, colDifficulty),
				Date:         date,
			})
		}
		entries[i].Sets = append(entries[i].Sets, models.WorkoutSet{
			Reps:   parseInt(cell(row, colReps)),
			Weight: parseFloat(cell(row, colWeight)),
		})
	}
	return entries
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// SlugID derives a stable exercise id from the muscle group and name, e.g.
// ("chest", "Push-ups") becomes "chest-push-ups". The mapping is lossy, so
// distinct names can collide on the same id.
func SlugID(group, name string) string {
	s := strings.ToLower(strings.TrimSpace(group + " " + name))
	return strings.Trim(nonAlnum.ReplaceAllString(s, "-"), "-")
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseInt(s string) int {
	// Sheets sometimes hands numbers back as floats ("10.0").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
