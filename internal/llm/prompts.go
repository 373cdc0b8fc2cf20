package llm

import (
	"strings"
	"text/template"
)

// SystemPrompt frames every suggestion request sent to the model.
const SystemPrompt = `You are a knowledgeable and encouraging personal fitness coach. Your role is to analyze a user's workout history and provide personalized, actionable workout suggestions based on their fitness goals.

Key principles:
- Always consider the user's past workout patterns and progression
- Provide specific, measurable recommendations
- Consider recovery time and workout balance
- Keep suggestions realistic and achievable
- Include proper form reminders when relevant
- Suggest appropriate rest periods between exercises

Your suggestions should be:
1. Specific with sets, reps, and weights when applicable
2. Progressive (building on previous workouts)
3. Balanced (targeting different muscle groups)
4. Safe and injury-prevention focused
5. Motivating and encouraging

Format your response in a clear, structured way that's easy to follow.`

const generalPromptText = `User's Fitness Goal: {{.FitnessGoal}}
Current Date: {{.CurrentDate}}

Recent Workout History (last 5 workouts):
{{.WorkoutHistory}}

Based on the user's workout history and fitness goal, provide a personalized workout suggestion for today.

Consider:
- What exercises they've been doing recently
- Their progression patterns
- Recovery needs
- Goal alignment
- Workout variety and balance

Provide a structured workout plan with:
1. Warm-up recommendations
2. Main exercises with specific sets, reps, and weight suggestions
3. Cool-down suggestions
4. Any specific form tips or modifications
5. Rest day recommendations if needed

Keep the workout focused, achievable, and aligned with their goals.`

const strengthPromptText = `User's Fitness Goal: Strength Building
Current Date: {{.CurrentDate}}

Recent Workout History (last 5 workouts):
{{.WorkoutHistory}}

Design a strength-focused workout that emphasizes:
- Progressive overload
- Compound movements
- Adequate rest between sets (2-3 minutes)
- Focus on form over speed
- Gradual weight progression

Provide specific recommendations for:
1. Compound exercises (squats, deadlifts, bench press, etc.)
2. Accessory exercises
3. Set and rep schemes (typically 3-5 sets of 3-8 reps for strength)
4. Weight progression suggestions
5. Rest periods`

const endurancePromptText = `User's Fitness Goal: Endurance/Cardio
Current Date: {{.CurrentDate}}

Recent Workout History (last 5 workouts):
{{.WorkoutHistory}}

Design an endurance-focused workout that emphasizes:
- Cardiovascular fitness
- Muscular endurance
- Longer duration activities
- Heart rate zones
- Recovery between exercises

Provide specific recommendations for:
1. Cardio activities (running, cycling, rowing, etc.)
2. Circuit training exercises
3. Duration and intensity levels
4. Heart rate targets
5. Active recovery periods`

const fatLossPromptText = `User's Fitness Goal: Fat Loss
Current Date: {{.CurrentDate}}

Recent Workout History (last 5 workouts):
{{.WorkoutHistory}}

Design a fat loss-focused workout that emphasizes:
- High-intensity interval training (HIIT)
- Compound movements for calorie burn
- Metabolic conditioning
- Strength training to preserve muscle
- Active recovery

Provide specific recommendations for:
1. HIIT exercises and timing
2. Strength exercises with higher reps
3. Circuit training format
4. Work-to-rest ratios
5. Total workout duration`

var (
	generalPrompt   = template.Must(template.New("general").Parse(generalPromptText))
	strengthPrompt  = template.Must(template.New("strength").Parse(strengthPromptText))
	endurancePrompt = template.Must(template.New("endurance").Parse(endurancePromptText))
	fatLossPrompt   = template.Must(template.New("fat_loss").Parse(fatLossPromptText))
)

type promptData struct {
	FitnessGoal    string
	CurrentDate    string
	WorkoutHistory string
}

// promptForGoal picks a template by keyword, mirroring how coaches specialize:
// strength and muscle goals get the strength plan, endurance and cardio goals
// get the endurance plan, fat/weight loss goals get the fat-loss plan, and
// anything else falls through to the general plan.
func promptForGoal(fitnessGoal string) *template.Template {
	goal := strings.ToLower(fitnessGoal)

	switch {
	case strings.Contains(goal, "strength") || strings.Contains(goal, "muscle"):
		return strengthPrompt
	case strings.Contains(goal, "endurance") || strings.Contains(goal, "cardio"):
		return endurancePrompt
	case strings.Contains(goal, "fat") || strings.Contains(goal, "weight loss") || strings.Contains(goal, "lose"):
		return fatLossPrompt
	default:
		return generalPrompt
	}
}

// BuildPrompt renders the user-facing prompt for a suggestion request.
func BuildPrompt(fitnessGoal, currentDate, workoutHistory string) (string, error) {
	tmpl := promptForGoal(fitnessGoal)

	var b strings.Builder
	err := tmpl.Execute(&b, promptData{
		FitnessGoal:    fitnessGoal,
		CurrentDate:    currentDate,
		WorkoutHistory: workoutHistory,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
