// Package client is a small programmatic client for the workout tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Tharikabalu/LLM-powered-Workout-Planner/internal/models"
)

const DefaultBaseURL = "http://localhost:8000"

// APIError is a non-2xx response, carrying the server's detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// LogWorkoutRequest mirrors the POST /log_workout body. Nil optional fields
// are transmitted as JSON null.
type LogWorkoutRequest struct {
	ExerciseName string   `json:"exercise_name"`
	Sets         *int     `json:"sets"`
	Reps         *int     `json:"reps"`
	Weight       *float64 `json:"weight"`
	Duration     *int     `json:"duration"`
	Date         string   `json:"date,omitempty"`
}

// LoggedWorkout is the creation confirmation.
type LoggedWorkout struct {
	models.Workout
	Message  string `json:"message"`
	Exercise string `json:"exercise"`
}

func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

func (c *Client) LogWorkout(ctx context.Context, req LogWorkoutRequest) (*LoggedWorkout, error) {
	var logged LoggedWorkout
	if err := c.post(ctx, "/log_workout", req, &logged); err != nil {
		return nil, err
	}
	return &logged, nil
}

func (c *Client) RecentWorkouts(ctx context.Context, limit int) ([]models.Workout, error) {
	path := "/workouts/recent"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var workouts []models.Workout
	if err := c.get(ctx, path, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) AllWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := c.get(ctx, "/workouts/all", &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) WorkoutsByRange(ctx context.Context, startDate, endDate string) ([]models.Workout, error) {
	query := url.Values{}
	query.Set("start", startDate)
	query.Set("end", endDate)

	var workouts []models.Workout
	if err := c.get(ctx, "/workouts/range?"+query.Encode(), &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) Stats(ctx context.Context) (*models.WorkoutStats, error) {
	var stats models.WorkoutStats
	if err := c.get(ctx, "/workouts/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetSuggestions(ctx context.Context, fitnessGoal, userID string) (*models.Suggestion, error) {
	if userID == "" {
		userID = "default"
	}
	body := map[string]string{
		"fitness_goal": fitnessGoal,
		"user_id":      userID,
	}

	var suggestion models.Suggestion
	if err := c.post(ctx, "/get_suggestions", body, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		payload.Detail = strings.TrimSpace(string(body))
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: payload.Detail}
}
