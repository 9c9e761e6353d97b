package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fitcoach/models"
)

// Field names accepted by FitnessValidator.
const (
	// FieldGoalType targets Goal.GoalType.
	FieldGoalType = "goal_type"

	// FieldMeasurements targets the weight and body-fat figures of a Goal.
	FieldMeasurements = "measurements"

	// FieldDailyCalories targets MacroPlan.DailyCalories.
	FieldDailyCalories = "daily_calories"

	// FieldGrams targets the protein, carb and fat grams of a MacroPlan.
	FieldGrams = "grams"

	// FieldWeight targets ProgressEntry.Weight.
	FieldWeight = "weight"

	// FieldEnergyLevel targets ProgressEntry.EnergyLevel.
	FieldEnergyLevel = "energy_level"
)

// GoalTypes is the set of goal types a user can pick.
var GoalTypes = []string{"weight_loss", "muscle_gain", "strength", "endurance"}

var (
	goalFields      = []string{FieldGoalType, FieldMeasurements}
	macroPlanFields = []string{FieldDailyCalories, FieldGrams}
	progressFields  = []string{FieldWeight, FieldEnergyLevel}
)

// FitnessValidator validates Goal, MacroPlan and ProgressEntry values,
// passed either by value or by pointer. Optional fields left nil are not
// checked.
type FitnessValidator struct{}

func NewFitnessValidator() Validator {
	return &FitnessValidator{}
}

func (v *FitnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Goal:
		return v.validateGoal(ctx, value, fields...)
	case *models.Goal:
		return v.validateGoal(ctx, *value, fields...)

	case models.MacroPlan:
		return v.validateMacroPlan(ctx, value, fields...)
	case *models.MacroPlan:
		return v.validateMacroPlan(ctx, *value, fields...)

	case models.ProgressEntry:
		return v.validateProgressEntry(ctx, value, fields...)
	case *models.ProgressEntry:
		return v.validateProgressEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FitnessValidator) validateGoal(_ context.Context, goal models.Goal, fields ...string) error {
	if len(fields) == 0 {
		fields = goalFields
	}

	for _, field := range fields {
		switch field {
		case FieldGoalType:
			if goal.GoalType == "" {
				return ErrEmptyGoalType
			}
			if !isValidGoalType(goal.GoalType) {
				return fmt.Errorf("%w %q", ErrUnknownGoalType, goal.GoalType)
			}
		case FieldMeasurements:
			for _, m := range []*int{goal.CurrentWeight, goal.TargetWeight, goal.CurrentBodyFat, goal.TargetBodyFat} {
				if m != nil && *m <= 0 {
					return ErrNonPositiveMeasurement
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *FitnessValidator) validateMacroPlan(_ context.Context, plan models.MacroPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = macroPlanFields
	}

	for _, field := range fields {
		switch field {
		case FieldDailyCalories:
			if plan.DailyCalories <= 0 {
				return ErrNonPositiveCalories
			}
		case FieldGrams:
			if plan.ProteinGrams < 0 || plan.CarbGrams < 0 || plan.FatGrams < 0 {
				return ErrNegativeGrams
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *FitnessValidator) validateProgressEntry(_ context.Context, entry models.ProgressEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = progressFields
	}

	for _, field := range fields {
		switch field {
		case FieldWeight:
			if entry.Weight != nil && *entry.Weight <= 0 {
				return ErrNonPositiveWeight
			}
		case FieldEnergyLevel:
			if entry.EnergyLevel != nil && (*entry.EnergyLevel < 1 || *entry.EnergyLevel > 10) {
				return ErrEnergyLevelOutOfRange
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func isValidGoalType(goalType string) bool {
	for _, t := range GoalTypes {
		if goalType == t {
			return true
		}
	}
	return false
}
