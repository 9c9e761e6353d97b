package models

import "time"

// Goal is a user's fitness objective.
type Goal struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	GoalType          string    `json:"goalType"`
	CurrentWeight     *int      `json:"currentWeight,omitempty"`
	TargetWeight      *int      `json:"targetWeight,omitempty"`
	CurrentBodyFat    *int      `json:"currentBodyFat,omitempty"`
	TargetBodyFat     *int      `json:"targetBodyFat,omitempty"`
	Timeline          string    `json:"timeline,omitempty"`
	ActivityLevel     string    `json:"activityLevel,omitempty"`
	FitnessExperience string    `json:"fitnessExperience,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MacroPlan is a daily calorie and macronutrient target.
type MacroPlan struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	GoalID         int64     `json:"goalId"`
	DailyCalories  int       `json:"dailyCalories"`
	ProteinGrams   int       `json:"proteinGrams"`
	CarbGrams      int       `json:"carbGrams"`
	FatGrams       int       `json:"fatGrams"`
	ProteinPercent int       `json:"proteinPercent"`
	CarbPercent    int       `json:"carbPercent"`
	FatPercent     int       `json:"fatPercent"`
	MealsPerDay    int       `json:"mealsPerDay"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FillPercents derives the macro percentages from grams and calories
// (4 kcal per gram of protein and carbs, 9 per gram of fat).
func (m *MacroPlan) FillPercents() {
	if m.DailyCalories <= 0 {
		return
	}
	cal := float64(m.DailyCalories)
	m.ProteinPercent = roundPercent(float64(m.ProteinGrams*4) / cal)
	m.CarbPercent = roundPercent(float64(m.CarbGrams*4) / cal)
	m.FatPercent = roundPercent(float64(m.FatGrams*9) / cal)
}

func roundPercent(share float64) int {
	return int(share*100 + 0.5)
}

// ProgressEntry is a single progress measurement.
type ProgressEntry struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	GoalID           int64     `json:"goalId"`
	RecordDate       time.Time `json:"recordDate"`
	Weight           *float64  `json:"weight,omitempty"`
	BodyFat          *int      `json:"bodyFat,omitempty"`
	WorkoutCompleted bool      `json:"workoutCompleted"`
	CaloriesConsumed *int      `json:"caloriesConsumed,omitempty"`
	ProteinConsumed  *int      `json:"proteinConsumed,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Mood             string    `json:"mood,omitempty"`
	EnergyLevel      *int      `json:"energyLevel,omitempty"`
}
