// Package catalog holds the static exercise reference data the UI browses.
package catalog

// Exercise describes one catalog entry. IDs follow the muscle-group/name slug
// convention used when entries are reconstructed from remote rows.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Difficulty  string `json:"difficulty"`
	Equipment   string `json:"equipment,omitempty"`
}

// Difficulty levels, easiest first.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// All returns the full catalog in display order.
func All() []Exercise {
	return append([]Exercise(nil), exercises...)
}

// ByMuscleGroup returns exercises for the given group, preserving order.
func ByMuscleGroup(group string) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if ex.MuscleGroup == group {
			out = append(out, ex)
		}
	}
	return out
}

// ByDifficulty returns exercises at the given difficulty, preserving order.
func ByDifficulty(level string) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if ex.Difficulty == level {
			out = append(out, ex)
		}
	}
	return out
}

// Filter applies optional muscle-group and difficulty filters; empty strings
// match everything.
func Filter(group, level string) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if group != "" && ex.MuscleGroup != group {
			continue
		}
		if level != "" && ex.Difficulty != level {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Find returns the exercise with the given id.
func Find(id string) (Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// MuscleGroups returns the distinct muscle groups in catalog order.
func MuscleGroups() []string {
	var out []string
	seen := make(map[string]bool)
	for _, ex := range exercises {
		if !seen[ex.MuscleGroup] {
			seen[ex.MuscleGroup] = true
			out = append(out, ex.MuscleGroup)
		}
	}
	return out
}
