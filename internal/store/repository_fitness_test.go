package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGoalColumns = []string{
	"id", "user_id", "goal_type", "current_weight", "target_weight",
	"current_body_fat", "target_body_fat", "timeline", "activity_level",
	"fitness_experience", "is_active", "created_at", "updated_at",
}

func TestFitnessRepository_CreateGoal(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	current, target := 180, 165
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_goals")).
		WithArgs(int64(1), "weight_loss", int64(180), int64(165), nil, nil, "3 months", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(9), now, now))

	goal, err := repo.CreateGoal(context.Background(), models.Goal{
		UserID:        1,
		GoalType:      "weight_loss",
		CurrentWeight: &current,
		TargetWeight:  &target,
		Timeline:      "3 months",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), goal.ID)
	assert.True(t, goal.IsActive)
}

func TestFitnessRepository_ActiveGoal(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_goals WHERE is_active = $1 AND user_id = $2")).
		WithArgs(true, int64(1)).
		WillReturnRows(sqlmock.NewRows(testGoalColumns).
			AddRow(int64(9), int64(1), "weight_loss", int64(180), nil, nil, nil, "", "", "", true, now, now))

	goal, err := repo.ActiveGoal(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, goal.CurrentWeight)
	assert.Equal(t, 180, *goal.CurrentWeight)
	assert.Nil(t, goal.TargetWeight)
}

func TestFitnessRepository_ActiveGoal_None(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	mock.ExpectQuery("FROM user_goals").WillReturnRows(sqlmock.NewRows(testGoalColumns))

	_, err := repo.ActiveGoal(context.Background(), 1)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestFitnessRepository_CreateMacroPlan(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	plan := models.MacroPlan{UserID: 1, DailyCalories: 2000, ProteinGrams: 150, MealsPerDay: 3}
	plan.FillPercents()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE macro_plans SET is_active = FALSE")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO macro_plans")).
		WithArgs(int64(1), nil, 2000, 150, 0, 0, 30, 0, 0, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), time.Now()))
	mock.ExpectCommit()

	saved, err := repo.CreateMacroPlan(context.Background(), plan)

	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.ID)
	assert.True(t, saved.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFitnessRepository_CreateMacroPlan_RollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE macro_plans").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO macro_plans").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.CreateMacroPlan(context.Background(), models.MacroPlan{UserID: 1, DailyCalories: 1800})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFitnessRepository_CreateMacroPlan_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	_, err := repo.CreateMacroPlan(context.Background(), models.MacroPlan{UserID: 1})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestFitnessRepository_AddAndListProgress(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFitnessRepository(db, logger.Nop())

	weight := 172.5
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO progress_entries")).
		WithArgs(int64(1), int64(9), 172.5, nil, false, nil, nil, "Weight logged via chat", "", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "record_date"}).AddRow(int64(3), now))

	entry, err := repo.AddProgress(context.Background(), models.ProgressEntry{
		UserID: 1,
		GoalID: 9,
		Weight: &weight,
		Notes:  "Weight logged via chat",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM progress_entries WHERE user_id = $1 ORDER BY record_date DESC, id DESC LIMIT 10")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "goal_id", "record_date", "weight", "body_fat", "workout_completed",
			"calories_consumed", "protein_consumed", "notes", "mood", "energy_level",
		}).AddRow(int64(3), int64(1), int64(9), now, 172.5, nil, false, nil, nil, "Weight logged via chat", "", nil))

	entries, err := repo.ListProgress(context.Background(), 1, 10)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Weight)
	assert.InDelta(t, 172.5, *entries[0].Weight, 0.001)
	assert.Nil(t, entries[0].BodyFat)
}
