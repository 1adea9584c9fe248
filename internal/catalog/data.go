package catalog

var exercises = []Exercise{
	// Chest
	{ID: "chest-push-ups", Name: "Push-ups", MuscleGroup: "chest", Difficulty: Beginner, Equipment: "bodyweight"},
	{ID: "chest-bench-press", Name: "Bench Press", MuscleGroup: "chest", Difficulty: Intermediate, Equipment: "barbell"},
	{ID: "chest-incline-dumbbell-press", Name: "Incline Dumbbell Press", MuscleGroup: "chest", Difficulty: Intermediate, Equipment: "dumbbells"},
	{ID: "chest-cable-fly", Name: "Cable Fly", MuscleGroup: "chest", Difficulty: Intermediate, Equipment: "cable machine"},
	{ID: "chest-weighted-dips", Name: "Weighted Dips", MuscleGroup: "chest", Difficulty: Advanced, Equipment: "dip station"},

	// Back
	{ID: "back-inverted-rows", Name: "Inverted Rows", MuscleGroup: "back", Difficulty: Beginner, Equipment: "bar"},
	{ID: "back-lat-pulldown", Name: "Lat Pulldown", MuscleGroup: "back", Difficulty: Beginner, Equipment: "cable machine"},
	{ID: "back-bent-over-row", Name: "Bent-over Row", MuscleGroup: "back", Difficulty: Intermediate, Equipment: "barbell"},
	{ID: "back-pull-ups", Name: "Pull-ups", MuscleGroup: "back", Difficulty: Intermediate, Equipment: "bar"},
	{ID: "back-deadlift", Name: "Deadlift", MuscleGroup: "back", Difficulty: Advanced, Equipment: "barbell"},

	// Legs
	{ID: "legs-bodyweight-squats", Name: "Bodyweight Squats", MuscleGroup: "legs", Difficulty: Beginner, Equipment: "bodyweight"},
	{ID: "legs-lunges", Name: "Lunges", MuscleGroup: "legs", Difficulty: Beginner, Equipment: "bodyweight"},
	{ID: "legs-leg-press", Name: "Leg Press", MuscleGroup: "legs", Difficulty: Intermediate, Equipment: "machine"},
	{ID: "legs-romanian-deadlift", Name: "Romanian Deadlift", MuscleGroup: "legs", Difficulty: Intermediate, Equipment: "barbell"},
	{ID: "legs-back-squat", Name: "Back Squat", MuscleGroup: "legs", Difficulty: Advanced, Equipment: "barbell"},

	// Shoulders
	{ID: "shoulders-lateral-raise", Name: "Lateral Raise", MuscleGroup: "shoulders", Difficulty: Beginner, Equipment: "dumbbells"},
	{ID: "shoulders-overhead-press", Name: "Overhead Press", MuscleGroup: "shoulders", Difficulty: Intermediate, Equipment: "barbell"},
	{ID: "shoulders-arnold-press", Name: "Arnold Press", MuscleGroup: "shoulders", Difficulty: Intermediate, Equipment: "dumbbells"},
	{ID: "shoulders-handstand-push-ups", Name: "Handstand Push-ups", MuscleGroup: "shoulders", Difficulty: Advanced, Equipment: "bodyweight"},

	// Arms
	{ID: "arms-bicep-curl", Name: "Bicep Curl", MuscleGroup: "arms", Difficulty: Beginner, Equipment: "dumbbells"},
	{ID: "arms-tricep-pushdown", Name: "Tricep Pushdown", MuscleGroup: "arms", Difficulty: Beginner, Equipment: "cable machine"},
	{ID: "arms-hammer-curl", Name: "Hammer Curl", MuscleGroup: "arms", Difficulty: Intermediate, Equipment: "dumbbells"},
	{ID: "arms-close-grip-bench-press", Name: "Close-grip Bench Press", MuscleGroup: "arms", Difficulty: Advanced, Equipment: "barbell"},

	// Core
	{ID: "core-plank", Name: "Plank", MuscleGroup: "core", Difficulty: Beginner, Equipment: "bodyweight"},
	{ID: "core-russian-twists", Name: "Russian Twists", MuscleGroup: "core", Difficulty: Intermediate, Equipment: "bodyweight"},
	{ID: "core-hanging-leg-raise", Name: "Hanging Leg Raise", MuscleGroup: "core", Difficulty: Advanced, Equipment: "bar"},
	{ID: "core-ab-wheel-rollout", Name: "Ab Wheel Rollout", MuscleGroup: "core", Difficulty: Advanced, Equipment: "ab wheel"},
}
