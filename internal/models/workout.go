package models

import "time"

// Workout is one logged exercise session. The quantitative attributes are
// optional and stay NULL in storage when the client omits them.
type Workout struct {
	ID              int64     `json:"id"`
	ExerciseName    string    `json:"exercise_name"`
	Sets            *int      `json:"sets"`
	Reps            *int      `json:"reps"`
	Weight          *float64  `json:"weight"`
	DurationMinutes *int      `json:"duration"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkoutStats is derived from the full workout table on each request.
type WorkoutStats struct {
	TotalWorkouts          int     `json:"total_workouts"`
	UniqueExercises        int     `json:"unique_exercises"`
	TotalDurationMinutes   int     `json:"total_duration_minutes"`
	MostRecentWorkout      *string `json:"most_recent_workout"`
	AverageWorkoutsPerWeek float64 `json:"average_workouts_per_week"`
}
