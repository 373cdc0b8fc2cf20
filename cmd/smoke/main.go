// Smoke-tests a running workout tracker end to end: health check, a batch of
// sample workouts, the read endpoints, and one suggestion per canonical goal.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/pkg/client"
)

func main() {
	baseURL := flag.String("base-url", client.DefaultBaseURL, "base URL of the running server")
	skipSuggestions := flag.Bool("skip-suggestions", false, "skip the LLM suggestion checks")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api := client.New(*baseURL)

	log.Println("1. Health check...")
	if err := api.Health(ctx); err != nil {
		log.Fatalf("cannot reach server at %s: %v", *baseURL, err)
	}
	log.Println("   ok")

	log.Println("2. Logging sample workouts...")
	for _, workout := range sampleWorkouts() {
		logged, err := api.LogWorkout(ctx, workout)
		if err != nil {
			log.Fatalf("   failed to log %s: %v", workout.ExerciseName, err)
		}
		log.Printf("   logged: %s (%s)", logged.Exercise, logged.Date)
	}

	log.Println("3. Fetching recent workouts...")
	recent, err := api.RecentWorkouts(ctx, 3)
	if err != nil {
		log.Fatalf("   failed: %v", err)
	}
	for _, workout := range recent {
		log.Printf("   - %s (%s)", workout.ExerciseName, workout.Date)
	}

	log.Println("4. Fetching stats...")
	stats, err := api.Stats(ctx)
	if err != nil {
		log.Fatalf("   failed: %v", err)
	}
	log.Printf("   total=%d unique=%d most_recent=%s",
		stats.TotalWorkouts, stats.UniqueExercises, deref(stats.MostRecentWorkout))

	if *skipSuggestions {
		log.Println("5. Skipping suggestion checks")
		return
	}

	log.Println("5. Requesting suggestions...")
	for _, goal := range []string{"strength building", "endurance", "fat loss"} {
		suggestion, err := api.GetSuggestions(ctx, goal, "default")
		if err != nil {
			log.Printf("   %s: failed: %v", goal, err)
			continue
		}
		log.Printf("   %s: based on %d workouts, generated at %s",
			suggestion.FitnessGoal, suggestion.WorkoutHistoryCount, suggestion.GeneratedAt)
	}

	log.Println("Smoke run complete")
}

func sampleWorkouts() []client.LogWorkoutRequest {
	return []client.LogWorkoutRequest{
		{ExerciseName: "Bench Press", Sets: intp(3), Reps: intp(10), Weight: floatp(135.0), Date: "2024-01-15"},
		{ExerciseName: "Squats", Sets: intp(4), Reps: intp(12), Weight: floatp(185.0), Date: "2024-01-16"},
		{ExerciseName: "Deadlifts", Sets: intp(3), Reps: intp(8), Weight: floatp(225.0), Date: "2024-01-17"},
		{ExerciseName: "Pull-ups", Sets: intp(3), Reps: intp(8), Date: "2024-01-18"},
		{ExerciseName: "Overhead Press", Sets: intp(3), Reps: intp(10), Weight: floatp(95.0), Date: "2024-01-19"},
	}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
