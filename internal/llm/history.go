package llm

import (
	"fmt"
	"strings"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
)

// FormatHistory turns recent workouts into the numbered plain-text block the
// prompts embed. Optional attributes are listed only when present.
func FormatHistory(workouts []models.Workout) string {
	if len(workouts) == 0 {
		return "No previous workouts found."
	}

	blocks := make([]string, 0, len(workouts))
	for i, workout := range workouts {
		var b strings.Builder
		fmt.Fprintf(&b, "Workout %d (%s):\n", i+1, workout.Date)
		fmt.Fprintf(&b, "  Exercise: %s\n", workout.ExerciseName)

		if workout.Sets != nil {
			fmt.Fprintf(&b, "  Sets: %d\n", *workout.Sets)
		}
		if workout.Reps != nil {
			fmt.Fprintf(&b, "  Reps: %d\n", *workout.Reps)
		}
		if workout.Weight != nil {
			fmt.Fprintf(&b, "  Weight: %g kg/lbs\n", *workout.Weight)
		}
		if workout.DurationMinutes != nil {
			fmt.Fprintf(&b, "  Duration: %d minutes\n", *workout.DurationMinutes)
		}

		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n")
}
