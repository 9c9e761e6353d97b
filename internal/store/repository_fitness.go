package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
)

// fitnessRepository is the PostgreSQL-backed implementation of
// [FitnessRepository] over the user_goals, macro_plans and progress_entries
// tables.
type fitnessRepository struct {
	*DB
	logger *logger.Logger
}

// NewFitnessRepository constructs a [FitnessRepository] backed by db.
func NewFitnessRepository(db *DB, logger *logger.Logger) FitnessRepository {
	return &fitnessRepository{
		DB:     db,
		logger: logger,
	}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func (f *fitnessRepository) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	err := f.QueryRowContext(ctx, createGoal,
		goal.UserID,
		goal.GoalType,
		nullInt(goal.CurrentWeight),
		nullInt(goal.TargetWeight),
		nullInt(goal.CurrentBodyFat),
		nullInt(goal.TargetBodyFat),
		goal.Timeline,
		goal.ActivityLevel,
		goal.FitnessExperience,
	).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fitnessRepository.CreateGoal").
			Int64("user_id", goal.UserID).
			Msg("failed to create goal")
		return models.Goal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	goal.IsActive = true
	return goal, nil
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var (
		g                             models.Goal
		currentWeight, targetWeight   sql.NullInt64
		currentBodyFat, targetBodyFat sql.NullInt64
	)
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.GoalType,
		&currentWeight,
		&targetWeight,
		&currentBodyFat,
		&targetBodyFat,
		&g.Timeline,
		&g.ActivityLevel,
		&g.FitnessExperience,
		&g.IsActive,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return models.Goal{}, err
	}

	g.CurrentWeight = intPtr(currentWeight)
	g.TargetWeight = intPtr(targetWeight)
	g.CurrentBodyFat = intPtr(currentBodyFat)
	g.TargetBodyFat = intPtr(targetBodyFat)
	return g, nil
}

// ActiveGoal returns the most recent active goal of the user.
func (f *fitnessRepository) ActiveGoal(ctx context.Context, userID int64) (models.Goal, error) {
	query, args, err := buildActiveGoalQuery(userID)
	if err != nil {
		return models.Goal{}, err
	}

	goal, err := scanGoal(f.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return goal, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Goal{}, ErrGoalNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "fitnessRepository.ActiveGoal").Int64("user_id", userID).Msg("failed to query goal")
		return models.Goal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (f *fitnessRepository) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListGoalsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "fitnessRepository.ListGoals").Int64("user_id", userID).Msg("failed to query goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	goals := make([]models.Goal, 0, 4)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return goals, nil
}

// CreateMacroPlan replaces the active plan inside one transaction.
func (f *fitnessRepository) CreateMacroPlan(ctx context.Context, plan models.MacroPlan) (models.MacroPlan, error) {
	log := logger.FromContext(ctx)

	tx, err := f.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "fitnessRepository.CreateMacroPlan").Msg("failed to begin transaction")
		return models.MacroPlan{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, deactivateMacroPlans, plan.UserID); err != nil {
		log.Err(err).Str("func", "fitnessRepository.CreateMacroPlan").Int64("user_id", plan.UserID).Msg("failed to deactivate macro plans")
		return models.MacroPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err = tx.QueryRowContext(ctx, createMacroPlan,
		plan.UserID,
		nullID(plan.GoalID),
		plan.DailyCalories,
		plan.ProteinGrams,
		plan.CarbGrams,
		plan.FatGrams,
		plan.ProteinPercent,
		plan.CarbPercent,
		plan.FatPercent,
		plan.MealsPerDay,
	).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "fitnessRepository.CreateMacroPlan").Int64("user_id", plan.UserID).Msg("failed to insert macro plan")
		return models.MacroPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "fitnessRepository.CreateMacroPlan").Msg("failed to commit transaction")
		return models.MacroPlan{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	plan.IsActive = true
	return plan, nil
}

func (f *fitnessRepository) ActiveMacroPlan(ctx context.Context, userID int64) (models.MacroPlan, error) {
	query, args, err := buildActiveMacroPlanQuery(userID)
	if err != nil {
		return models.MacroPlan{}, err
	}

	var p models.MacroPlan
	err = f.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.UserID,
		&p.GoalID,
		&p.DailyCalories,
		&p.ProteinGrams,
		&p.CarbGrams,
		&p.FatGrams,
		&p.ProteinPercent,
		&p.CarbPercent,
		&p.FatPercent,
		&p.MealsPerDay,
		&p.IsActive,
		&p.CreatedAt,
	)
	switch {
	case err == nil:
		return p, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.MacroPlan{}, ErrMacroPlanNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "fitnessRepository.ActiveMacroPlan").Int64("user_id", userID).Msg("failed to query macro plan")
		return models.MacroPlan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (f *fitnessRepository) AddProgress(ctx context.Context, entry models.ProgressEntry) (models.ProgressEntry, error) {
	err := f.QueryRowContext(ctx, addProgressEntry,
		entry.UserID,
		nullID(entry.GoalID),
		nullFloat(entry.Weight),
		nullInt(entry.BodyFat),
		entry.WorkoutCompleted,
		nullInt(entry.CaloriesConsumed),
		nullInt(entry.ProteinConsumed),
		entry.Notes,
		entry.Mood,
		nullInt(entry.EnergyLevel),
	).Scan(&entry.ID, &entry.RecordDate)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fitnessRepository.AddProgress").
			Int64("user_id", entry.UserID).
			Msg("failed to add progress entry")
		return models.ProgressEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entry, nil
}

// ListProgress returns the newest entries first.
func (f *fitnessRepository) ListProgress(ctx context.Context, userID int64, limit int) ([]models.ProgressEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProgressQuery(userID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "fitnessRepository.ListProgress").Int64("user_id", userID).Msg("failed to query progress")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ProgressEntry, 0, 16)
	for rows.Next() {
		var (
			e                                  models.ProgressEntry
			weight                             sql.NullFloat64
			bodyFat, calories, protein, energy sql.NullInt64
		)
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.GoalID,
			&e.RecordDate,
			&weight,
			&bodyFat,
			&e.WorkoutCompleted,
			&calories,
			&protein,
			&e.Notes,
			&e.Mood,
			&energy,
		)
		if err != nil {
			log.Err(err).Str("func", "fitnessRepository.ListProgress").Int64("user_id", userID).Msg("failed to scan progress entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if weight.Valid {
			w := weight.Float64
			e.Weight = &w
		}
		e.BodyFat = intPtr(bodyFat)
		e.CaloriesConsumed = intPtr(calories)
		e.ProteinConsumed = intPtr(protein)
		e.EnergyLevel = intPtr(energy)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
