package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fitcoach/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id",
	"username",
	"email",
	"first_name",
	"last_name",
	"phone",
	"supabase_id",
	"stripe_customer_id",
	"stripe_subscription_id",
	"subscription_status",
	"subscription_tier",
	"daily_message_count",
	"COALESCE(to_char(last_message_date, 'YYYY-MM-DD'), '')",
	"is_blocked",
	"email_verified",
	"email_verification_token",
	"password_reset_token",
	"password_reset_token_expiry",
	"deleted_at",
	"created_at",
}

var returningUser = " RETURNING " + strings.Join(userColumns, ", ")

var (
	createUser = `INSERT INTO users (
			username,
			email,
			first_name,
			last_name,
			phone,
			supabase_id,
			email_verified,
			email_verification_token,
			subscription_status,
			subscription_tier
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)` + returningUser

	linkSupabaseID = `UPDATE users
		SET supabase_id = $2
		WHERE id = $1 AND supabase_id IS NULL AND deleted_at IS NULL` + returningUser

	consumeVerificationToken = `UPDATE users
		SET email_verified = TRUE, email_verification_token = NULL
		WHERE email_verification_token = $1 AND deleted_at IS NULL` + returningUser

	incrementMessageCount = `UPDATE users
		SET daily_message_count = CASE
				WHEN last_message_date = $2::date THEN daily_message_count + 1
				ELSE 1
			END,
			last_message_date = $2::date
		WHERE id = $1 AND deleted_at IS NULL
			AND ($3 <= 0 OR last_message_date IS DISTINCT FROM $2::date OR daily_message_count < $3)` + returningUser
)

const (
	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	setVerificationToken = `UPDATE users
		SET email_verification_token = $2
		WHERE id = $1 AND email_verified = FALSE AND deleted_at IS NULL;`

	setPasswordResetToken = `UPDATE users
		SET password_reset_token = $2, password_reset_token_expiry = $3
		WHERE id = $1 AND deleted_at IS NULL;`

	clearPasswordResetToken = `UPDATE users
		SET password_reset_token = NULL, password_reset_token_expiry = NULL
		WHERE id = $1 AND password_reset_token = $2;`

	softDeleteUser = `UPDATE users
		SET deleted_at = NOW(),
			email_verification_token = NULL,
			password_reset_token = NULL,
			password_reset_token_expiry = NULL
		WHERE id = $1 AND deleted_at IS NULL;`
)

const (
	saveChatMessage = `INSERT INTO chat_messages (user_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, role, content, created_at;`

	createGoal = `INSERT INTO user_goals (
			user_id,
			goal_type,
			current_weight,
			target_weight,
			current_body_fat,
			target_body_fat,
			timeline,
			activity_level,
			fitness_experience,
			is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		RETURNING id, created_at, updated_at;`

	deactivateMacroPlans = `UPDATE macro_plans SET is_active = FALSE WHERE user_id = $1 AND is_active;`

	createMacroPlan = `INSERT INTO macro_plans (
			user_id,
			goal_id,
			daily_calories,
			protein_grams,
			carb_grams,
			fat_grams,
			protein_percent,
			carb_percent,
			fat_percent,
			meals_per_day,
			is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		RETURNING id, created_at;`

	addProgressEntry = `INSERT INTO progress_entries (
			user_id,
			goal_id,
			weight,
			body_fat,
			workout_completed,
			calories_consumed,
			protein_consumed,
			notes,
			mood,
			energy_level
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, record_date;`
)

var (
	goalColumns = []string{
		"id", "user_id", "goal_type", "current_weight", "target_weight",
		"current_body_fat", "target_body_fat", "timeline", "activity_level",
		"fitness_experience", "is_active", "created_at", "updated_at",
	}

	macroPlanColumns = []string{
		"id", "user_id", "COALESCE(goal_id, 0)", "daily_calories", "protein_grams",
		"carb_grams", "fat_grams", "protein_percent", "carb_percent",
		"fat_percent", "meals_per_day", "is_active", "created_at",
	}

	progressColumns = []string{
		"id", "user_id", "COALESCE(goal_id, 0)", "record_date", "weight", "body_fat",
		"workout_completed", "calories_consumed", "protein_consumed", "notes",
		"mood", "energy_level",
	}
)

// buildSelectUserQuery selects the live user matching the given column.
func buildSelectUserQuery(column string, value any) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindByResetTokenQuery selects the owner of token only while the token
// has not expired.
func buildFindByResetTokenQuery(token string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"password_reset_token": token, "deleted_at": nil}).
		Where(sq.Expr("password_reset_token_expiry > NOW()")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery builds a partial UPDATE touching only the non-nil
// fields of update.
func buildUpdateProfileQuery(id int64, update models.ProfileUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty profile update", ErrBuildingSQLQuery)
	}

	b := psql.Update(models.User{}.TableName())
	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.FirstName != nil {
		b = b.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		b = b.Set("last_name", *update.LastName)
	}
	if update.Phone != nil {
		b = b.Set("phone", *update.Phone)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateSubscriptionQuery builds an UPDATE that sets only the non-empty
// fields of change.
func buildUpdateSubscriptionQuery(id int64, change models.SubscriptionChange) (string, []any, error) {
	b := psql.Update(models.User{}.TableName())
	set := 0
	if change.Status != "" {
		b = b.Set("subscription_status", string(change.Status))
		set++
	}
	if change.Tier != "" {
		b = b.Set("subscription_tier", string(change.Tier))
		set++
	}
	if change.StripeCustomerID != "" {
		b = b.Set("stripe_customer_id", change.StripeCustomerID)
		set++
	}
	if change.StripeSubscriptionID != "" {
		b = b.Set("stripe_subscription_id", change.StripeSubscriptionID)
		set++
	}
	if set == 0 {
		return "", nil, fmt.Errorf("%w: empty subscription change", ErrBuildingSQLQuery)
	}

	query, args, err := b.
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningUser).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListMessagesQuery selects the newest messages of a user first.
func buildListMessagesQuery(userID int64, limit int) (string, []any, error) {
	b := psql.
		Select("id", "user_id", "role", "content", "created_at").
		From("chat_messages").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildActiveGoalQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(goalColumns...).
		From("user_goals").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListGoalsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(goalColumns...).
		From("user_goals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildActiveMacroPlanQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(macroPlanColumns...).
		From("macro_plans").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListProgressQuery(userID int64, limit int) (string, []any, error) {
	b := psql.
		Select(progressColumns...).
		From("progress_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("record_date DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
