package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
)

var (
	weightPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:lbs?|pounds?|kg|kilograms?)?`)
	caloriesPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:calories|kcal|cal)`)
	proteinPattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:g|grams?)\s*(?:of\s+)?protein`)
	carbsPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:g|grams?)\s*(?:of\s+)?(?:carbs?|carbohydrates?)`)
	fatsPattern     = regexp.MustCompile(`(?i)(\d+)\s*(?:g|grams?)\s*(?:of\s+)?(?:fats?|lipids?)`)
)

// Defaults of a progress entry logged from chat.
const (
	chatProgressMood        = "good"
	chatProgressEnergyLevel = 7
)

// ApplyChatActions logs a weight or creates a macro plan when message asks
// for it. Actions need an active goal; failures are logged and skipped.
func (s *fitnessService) ApplyChatActions(ctx context.Context, user models.User, message string) []string {
	log := logger.FromContext(ctx)
	lower := strings.ToLower(message)

	wantsWeight := strings.Contains(lower, "weigh")
	wantsMacros := strings.Contains(lower, "calories") || strings.Contains(lower, "macro")
	if !wantsWeight && !wantsMacros {
		return nil
	}

	goal, err := s.fitness.ActiveGoal(ctx, user.ID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", user.ID).Msg("no active goal for chat actions")
		return nil
	}

	var actions []string

	if wantsWeight {
		if weight, ok := extractWeight(message); ok {
			energy := chatProgressEnergyLevel
			zero := 0
			_, err := s.fitness.AddProgress(ctx, models.ProgressEntry{
				UserID:           user.ID,
				GoalID:           goal.ID,
				RecordDate:       s.now(),
				Weight:           &weight,
				Mood:             chatProgressMood,
				EnergyLevel:      &energy,
				CaloriesConsumed: &zero,
				ProteinConsumed:  &zero,
			})
			if err != nil {
				log.Err(err).Str("func", "fitnessService.ApplyChatActions").Int64("user_id", user.ID).Msg("error logging weight from chat")
			} else {
				actions = append(actions, "Logged weight: "+strconv.FormatFloat(weight, 'f', -1, 64)+" lbs")
			}
		}
	}

	if wantsMacros {
		if calories := extractInt(caloriesPattern, message); calories > 0 {
			plan := models.MacroPlan{
				UserID:        user.ID,
				GoalID:        goal.ID,
				DailyCalories: calories,
				ProteinGrams:  extractInt(proteinPattern, message),
				CarbGrams:     extractInt(carbsPattern, message),
				FatGrams:      extractInt(fatsPattern, message),
				MealsPerDay:   3,
				IsActive:      true,
			}
			plan.FillPercents()

			if _, err := s.fitness.CreateMacroPlan(ctx, plan); err != nil {
				log.Err(err).Str("func", "fitnessService.ApplyChatActions").Int64("user_id", user.ID).Msg("error creating macro plan from chat")
			} else {
				actions = append(actions, "Created macro plan: "+strconv.Itoa(calories)+" calories")
			}
		}
	}

	return actions
}

func extractWeight(message string) (float64, bool) {
	m := weightPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	weight, err := strconv.ParseFloat(m[1], 64)
	if err != nil || weight <= 0 {
		return 0, false
	}
	return weight, true
}

func extractInt(pattern *regexp.Regexp, text string) int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
