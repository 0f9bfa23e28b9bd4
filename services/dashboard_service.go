package services

// DashboardOverview is the single same-day aggregate the home screen
// renders from. Read-only; any failing table read fails the whole call.
type DashboardOverview struct {
	Date          string             `json:"date"`
	Nutrition     *NutritionSummary  `json:"nutrition"`
	Workouts      *WorkoutSummary    `json:"workouts"`
	Meditation    *MeditationSummary `json:"meditation"`
	Activities    *ActivitySummary   `json:"activities"`
	GoalsProgress []GoalProgress     `json:"goals_progress"`
}

func GetDashboardOverview(userID uint, date string) (*DashboardOverview, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	nutrition, err := NutritionSummaryForDate(userID, date)
	if err != nil {
		return nil, err
	}
	workouts, err := WorkoutSummaryForDate(userID, date)
	if err != nil {
		return nil, err
	}
	meditation, err := MeditationSummaryForDate(userID, date)
	if err != nil {
		return nil, err
	}
	activities, err := ActivitySummaryForDate(userID, date)
	if err != nil {
		return nil, err
	}
	goals, err := GoalsProgressForDate(userID, date)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		Date:          date,
		Nutrition:     nutrition,
		Workouts:      workouts,
		Meditation:    meditation,
		Activities:    activities,
		GoalsProgress: goals,
	}, nil
}
