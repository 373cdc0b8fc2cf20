package web

import (
	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
)

// Page carries what every section view needs: which nav item is active and an
// optional one-shot notification.
type Page struct {
	Title      string
	Active     string
	Notice     string
	NoticeKind string
}

type DashboardView struct {
	Page
	Stats    *models.WorkoutStats
	StatsErr bool

	Recent    []models.Workout
	RecentErr bool
}

type LogFormView struct {
	Page
	Today string
}

type HistoryView struct {
	Page
	Groups  []DateGroup
	ShowAll bool
}

type SuggestionsView struct {
	Page
	Goals  []string
	Result *models.Suggestion
}

// DateGroup is one history bucket: every workout whose literal date string
// matches, in response order.
type DateGroup struct {
	Date     string
	Workouts []models.Workout
}

// GroupByDate buckets workouts by exact date-string equality. Buckets appear
// in the order their date first occurs in the input, so the server-determined
// ordering is preserved rather than re-sorted.
func GroupByDate(workouts []models.Workout) []DateGroup {
	index := make(map[string]int, len(workouts))
	groups := make([]DateGroup, 0)

	for _, workout := range workouts {
		i, ok := index[workout.Date]
		if !ok {
			i = len(groups)
			index[workout.Date] = i
			groups = append(groups, DateGroup{Date: workout.Date})
		}
		groups[i].Workouts = append(groups[i].Workouts, workout)
	}

	return groups
}
