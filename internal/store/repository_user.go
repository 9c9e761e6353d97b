package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database failures are traced with the request's trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads the columns listed in userColumns.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user                                   models.User
		supabaseID, customerID, subscriptionID sql.NullString
		verificationToken, resetToken          sql.NullString
		status, tier                           string
		resetExpiry, deletedAt                 sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&supabaseID,
		&customerID,
		&subscriptionID,
		&status,
		&tier,
		&user.DailyMessageCount,
		&user.LastMessageDate,
		&user.IsBlocked,
		&user.EmailVerified,
		&verificationToken,
		&resetToken,
		&resetExpiry,
		&deletedAt,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.SupabaseID = supabaseID.String
	user.StripeCustomerID = customerID.String
	user.StripeSubscriptionID = subscriptionID.String
	user.SubscriptionStatus = models.SubscriptionStatus(status)
	user.SubscriptionTier = models.SubscriptionTier(tier)
	user.EmailVerificationToken = verificationToken.String
	user.PasswordResetToken = resetToken.String
	if resetExpiry.Valid {
		user.PasswordResetTokenExpiry = &resetExpiry.Time
	}
	if deletedAt.Valid {
		user.DeletedAt = &deletedAt.Time
	}

	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// queryUser runs a single-row user query and maps sql.ErrNoRows to notFound.
func (r *userRepository) queryUser(ctx context.Context, fn string, notFound error, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, notFound
	default:
		log.Err(err).Str("func", fn).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// Create inserts user and returns the stored row.
//
// Unique violations are mapped to [ErrEmailAlreadyExists],
// [ErrUsernameAlreadyExists] or [ErrIdentityAlreadyLinked] by constraint.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	status := user.SubscriptionStatus
	if status == "" {
		status = models.StatusInactive
	}
	tier := user.SubscriptionTier
	if tier == "" {
		tier = models.TierFree
	}

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Phone,
		nullString(user.SupabaseID),
		user.EmailVerified,
		nullString(user.EmailVerificationToken),
		string(status),
		string(tier),
	)

	created, err := scanUser(row)
	if err != nil {
		if uniqueErr := uniqueViolation(err); uniqueErr != nil {
			log.Warn().Err(err).Str("func", "*userRepository.Create").Msg("user already exists")
			return models.User{}, uniqueErr
		}
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := buildSelectUserQuery("id", id)
	if err != nil {
		return models.User{}, err
	}
	return r.queryUser(ctx, "*userRepository.FindByID", ErrUserNotFound, query, args...)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserQuery("email", email)
	if err != nil {
		return models.User{}, err
	}
	return r.queryUser(ctx, "*userRepository.FindByEmail", ErrUserNotFound, query, args...)
}

func (r *userRepository) FindBySupabaseID(ctx context.Context, supabaseID string) (models.User, error) {
	if supabaseID == "" {
		return models.User{}, ErrUserNotFound
	}
	query, args, err := buildSelectUserQuery("supabase_id", supabaseID)
	if err != nil {
		return models.User{}, err
	}
	return r.queryUser(ctx, "*userRepository.FindBySupabaseID", ErrUserNotFound, query, args...)
}

func (r *userRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (models.User, error) {
	if customerID == "" {
		return models.User{}, ErrUserNotFound
	}
	query, args, err := buildSelectUserQuery("stripe_customer_id", customerID)
	if err != nil {
		return models.User{}, err
	}
	return r.queryUser(ctx, "*userRepository.FindByStripeCustomerID", ErrUserNotFound, query, args...)
}

// UsernameExists also counts soft-deleted rows, which still hold their
// username.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, usernameExists, username).Scan(&exists)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UsernameExists").Msg("error checking username")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

// LinkSupabaseID sets supabase_id only while it is still NULL. When the row
// was linked in the meantime it is re-read and returned as stored.
func (r *userRepository) LinkSupabaseID(ctx context.Context, id int64, supabaseID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, linkSupabaseID, id, supabaseID))
	switch {
	case err == nil:
		log.Info().Int64("user_id", id).Msg("linked identity user")
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return r.FindByID(ctx, id)
	}

	if uniqueErr := uniqueViolation(err); uniqueErr != nil {
		log.Warn().Err(err).Int64("user_id", id).Str("func", "*userRepository.LinkSupabaseID").Msg("identity user already linked")
		return models.User{}, uniqueErr
	}

	log.Err(err).Int64("user_id", id).Str("func", "*userRepository.LinkSupabaseID").Msg("error linking identity user")
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}

// SetVerificationToken overwrites any previous token of an unverified user.
func (r *userRepository) SetVerificationToken(ctx context.Context, id int64, token string) error {
	return r.execAffectingOne(ctx, "*userRepository.SetVerificationToken", ErrUserNotFound, setVerificationToken, id, token)
}

func (r *userRepository) ConsumeVerificationToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidVerificationToken
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, consumeVerificationToken, token))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrInvalidVerificationToken
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ConsumeVerificationToken").Msg("error consuming verification token")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

func (r *userRepository) SetPasswordResetToken(ctx context.Context, id int64, token string, expiry time.Time) error {
	return r.execAffectingOne(ctx, "*userRepository.SetPasswordResetToken", ErrUserNotFound, setPasswordResetToken, id, token, expiry)
}

func (r *userRepository) FindByResetToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidResetToken
	}
	query, args, err := buildFindByResetTokenQuery(token)
	if err != nil {
		return models.User{}, err
	}
	return r.queryUser(ctx, "*userRepository.FindByResetToken", ErrInvalidResetToken, query, args...)
}

// ClearPasswordResetToken consumes token; a token that was already cleared
// yields [ErrInvalidResetToken].
func (r *userRepository) ClearPasswordResetToken(ctx context.Context, id int64, token string) error {
	return r.execAffectingOne(ctx, "*userRepository.ClearPasswordResetToken", ErrInvalidResetToken, clearPasswordResetToken, id, token)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(id, update)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	}

	if uniqueErr := uniqueViolation(err); uniqueErr != nil {
		return models.User{}, uniqueErr
	}
	log.Err(err).Int64("user_id", id).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
	return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
}

func (r *userRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "*userRepository.SoftDelete", ErrUserNotFound, softDeleteUser, id)
}

func (r *userRepository) IncrementMessageCount(ctx context.Context, id int64, day string, limit int) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, incrementMessageCount, id, day, limit))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrDailyLimitReached
	default:
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Str("func", "*userRepository.IncrementMessageCount").Msg("error incrementing message count")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

func (r *userRepository) UpdateSubscription(ctx context.Context, id int64, change models.SubscriptionChange) (models.User, error) {
	query, args, err := buildUpdateSubscriptionQuery(id, change)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Str("func", "*userRepository.UpdateSubscription").Msg("error updating subscription")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// execAffectingOne runs a DML statement and returns noRows when it touched
// nothing.
func (r *userRepository) execAffectingOne(ctx context.Context, fn string, noRows error, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return noRows
	}

	return nil
}
