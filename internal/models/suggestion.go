package models

// Suggestion is an AI-generated workout recommendation. It is ephemeral:
// nothing about it is persisted.
type Suggestion struct {
	Suggestion          string `json:"suggestion"`
	FitnessGoal         string `json:"fitness_goal"`
	GeneratedAt         string `json:"generated_at"`
	WorkoutHistoryCount int    `json:"workout_history_count"`
}
