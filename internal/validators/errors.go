package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyGoalType          = errors.New("goalType is required")
	ErrUnknownGoalType        = errors.New("unknown goalType")
	ErrNonPositiveMeasurement = errors.New("measurements must be positive")
	ErrNonPositiveCalories    = errors.New("dailyCalories must be positive")
	ErrNegativeGrams          = errors.New("grams must not be negative")
	ErrNonPositiveWeight      = errors.New("weight must be positive")
	ErrEnergyLevelOutOfRange  = errors.New("energyLevel must be between 1 and 10")
)
