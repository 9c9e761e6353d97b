package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/internal/validators"
	"github.com/MKhiriev/fitcoach/models"
)

const defaultProgressLimit = 100

type fitnessService struct {
	fitness   store.FitnessRepository
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewFitnessService(fitness store.FitnessRepository, validator validators.Validator, logger *logger.Logger) FitnessService {
	return &fitnessService{
		fitness:   fitness,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *fitnessService) CreateGoal(ctx context.Context, user models.User, goal models.Goal) (models.Goal, error) {
	goal.GoalType = strings.TrimSpace(goal.GoalType)
	if err := s.validator.Validate(ctx, goal); err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}

	goal.UserID = user.ID
	goal.IsActive = true

	created, err := s.fitness.CreateGoal(ctx, goal)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fitnessService.CreateGoal").Int64("user_id", user.ID).Msg("error creating goal")
		return models.Goal{}, fmt.Errorf("error creating goal: %w", err)
	}
	return created, nil
}

func (s *fitnessService) ListGoals(ctx context.Context, user models.User) ([]models.Goal, error) {
	goals, err := s.fitness.ListGoals(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing goals: %w", err)
	}
	return goals, nil
}

// CreateMacroPlan stores plan as the user's active plan. Percentages are
// always derived from grams and calories.
func (s *fitnessService) CreateMacroPlan(ctx context.Context, user models.User, plan models.MacroPlan) (models.MacroPlan, error) {
	if err := s.validator.Validate(ctx, plan); err != nil {
		return models.MacroPlan{}, fmt.Errorf("%w: %w", ErrInvalidMacroPlan, err)
	}
	if plan.MealsPerDay <= 0 {
		plan.MealsPerDay = 3
	}

	if plan.GoalID == 0 {
		goal, err := s.fitness.ActiveGoal(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrGoalNotFound) {
				return models.MacroPlan{}, fmt.Errorf("%w: create a goal first", ErrInvalidMacroPlan)
			}
			return models.MacroPlan{}, fmt.Errorf("error finding active goal: %w", err)
		}
		plan.GoalID = goal.ID
	}

	plan.UserID = user.ID
	plan.IsActive = true
	plan.FillPercents()

	created, err := s.fitness.CreateMacroPlan(ctx, plan)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fitnessService.CreateMacroPlan").Int64("user_id", user.ID).Msg("error creating macro plan")
		return models.MacroPlan{}, fmt.Errorf("error creating macro plan: %w", err)
	}
	return created, nil
}

func (s *fitnessService) ActiveMacroPlan(ctx context.Context, user models.User) (models.MacroPlan, error) {
	plan, err := s.fitness.ActiveMacroPlan(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrMacroPlanNotFound) {
			return models.MacroPlan{}, ErrNotFound
		}
		return models.MacroPlan{}, fmt.Errorf("error finding macro plan: %w", err)
	}
	return plan, nil
}

func (s *fitnessService) AddProgress(ctx context.Context, user models.User, entry models.ProgressEntry) (models.ProgressEntry, error) {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.ProgressEntry{}, fmt.Errorf("%w: %w", ErrInvalidProgressEntry, err)
	}

	if entry.GoalID == 0 {
		goal, err := s.fitness.ActiveGoal(ctx, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrGoalNotFound) {
				return models.ProgressEntry{}, fmt.Errorf("%w: create a goal first", ErrInvalidProgressEntry)
			}
			return models.ProgressEntry{}, fmt.Errorf("error finding active goal: %w", err)
		}
		entry.GoalID = goal.ID
	}
	if entry.RecordDate.IsZero() {
		entry.RecordDate = s.now()
	}
	entry.UserID = user.ID

	created, err := s.fitness.AddProgress(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fitnessService.AddProgress").Int64("user_id", user.ID).Msg("error adding progress")
		return models.ProgressEntry{}, fmt.Errorf("error adding progress: %w", err)
	}
	return created, nil
}

func (s *fitnessService) ListProgress(ctx context.Context, user models.User, goalID int64, limit int) ([]models.ProgressEntry, error) {
	if limit <= 0 {
		limit = defaultProgressLimit
	}

	entries, err := s.fitness.ListProgress(ctx, user.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing progress: %w", err)
	}
	if goalID == 0 {
		return entries, nil
	}

	filtered := make([]models.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if e.GoalID == goalID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
