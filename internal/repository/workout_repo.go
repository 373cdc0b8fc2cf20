package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CreateWorkoutInput struct {
	ExerciseName    string
	Sets            *int
	Reps            *int
	Weight          *float64
	DurationMinutes *int
	Date            string
}

// StatsRow is the single-pass aggregate used for the stats endpoint.
type StatsRow struct {
	TotalWorkouts        int
	UniqueExercises      int
	TotalDurationMinutes int
	MostRecentDate       *string
	DistinctDates        int
}

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) Create(
	ctx context.Context,
	input CreateWorkoutInput,
) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (exercise_name, sets, reps, weight, duration_min, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, exercise_name, sets, reps, weight, duration_min, date, created_at
	`

	var workout models.Workout
	err := r.db.QueryRow(
		ctx,
		query,
		input.ExerciseName,
		input.Sets,
		input.Reps,
		input.Weight,
		input.DurationMinutes,
		input.Date,
	).Scan(
		&workout.ID,
		&workout.ExerciseName,
		&workout.Sets,
		&workout.Reps,
		&workout.Weight,
		&workout.DurationMinutes,
		&workout.Date,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *WorkoutRepository) ListRecent(ctx context.Context, limit int) ([]models.Workout, error) {
	query := `
		SELECT id, exercise_name, sets, reps, weight, duration_min, date, created_at
		FROM workouts
		ORDER BY date DESC, created_at DESC
		LIMIT $1
	`
	return r.list(ctx, query, limit)
}

func (r *WorkoutRepository) ListAll(ctx context.Context) ([]models.Workout, error) {
	query := `
		SELECT id, exercise_name, sets, reps, weight, duration_min, date, created_at
		FROM workouts
		ORDER BY date DESC, created_at DESC
	`
	return r.list(ctx, query)
}

func (r *WorkoutRepository) ListByDateRange(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]models.Workout, error) {
	query := `
		SELECT id, exercise_name, sets, reps, weight, duration_min, date, created_at
		FROM workouts
		WHERE date BETWEEN $1 AND $2
		ORDER BY date DESC, created_at DESC
	`
	return r.list(ctx, query, startDate, endDate)
}

func (r *WorkoutRepository) Stats(ctx context.Context) (*StatsRow, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT exercise_name),
			COALESCE(SUM(duration_min), 0),
			MAX(date),
			COUNT(DISTINCT date)
		FROM workouts
	`

	var stats StatsRow
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalWorkouts,
		&stats.UniqueExercises,
		&stats.TotalDurationMinutes,
		&stats.MostRecentDate,
		&stats.DistinctDates,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *WorkoutRepository) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]models.Workout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]models.Workout, 0)
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.ExerciseName,
			&workout.Sets,
			&workout.Reps,
			&workout.Weight,
			&workout.DurationMinutes,
			&workout.Date,
			&workout.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}
