package store

import (
	"context"
	"time"

	"github.com/MKhiriev/fitcoach/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists application users. Every lookup ignores
// soft-deleted rows.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindBySupabaseID(ctx context.Context, supabaseID string) (models.User, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// LinkSupabaseID stores supabaseID on the row only while the row is
	// still unlinked. It returns ErrIdentityAlreadyLinked when another row
	// already holds supabaseID, and the current row unchanged when it was
	// linked concurrently.
	LinkSupabaseID(ctx context.Context, id int64, supabaseID string) (models.User, error)

	SetVerificationToken(ctx context.Context, id int64, token string) error
	// ConsumeVerificationToken marks the owner of token verified and clears
	// the token in a single statement.
	ConsumeVerificationToken(ctx context.Context, token string) (models.User, error)

	SetPasswordResetToken(ctx context.Context, id int64, token string, expiry time.Time) error
	// FindByResetToken returns the owner of an unexpired reset token.
	FindByResetToken(ctx context.Context, token string) (models.User, error)
	ClearPasswordResetToken(ctx context.Context, id int64, token string) error

	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error)
	SoftDelete(ctx context.Context, id int64) error

	// IncrementMessageCount bumps the per-day chat counter for day
	// (YYYY-MM-DD, UTC). With a positive limit the increment is refused
	// with ErrDailyLimitReached once the counter reaches it.
	IncrementMessageCount(ctx context.Context, id int64, day string, limit int) (models.User, error)
	UpdateSubscription(ctx context.Context, id int64, change models.SubscriptionChange) (models.User, error)
}

// ChatRepository stores coaching conversations.
type ChatRepository interface {
	SaveMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error)
	// ListMessages returns the newest messages first. A positive limit
	// keeps only the most recent ones.
	ListMessages(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error)
}

// FitnessRepository stores goals, macro plans and progress entries.
type FitnessRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	ActiveGoal(ctx context.Context, userID int64) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)

	// CreateMacroPlan deactivates the user's current plans and stores plan
	// as the active one.
	CreateMacroPlan(ctx context.Context, plan models.MacroPlan) (models.MacroPlan, error)
	ActiveMacroPlan(ctx context.Context, userID int64) (models.MacroPlan, error)

	AddProgress(ctx context.Context, entry models.ProgressEntry) (models.ProgressEntry, error)
	// ListProgress returns the newest entries first.
	ListProgress(ctx context.Context, userID int64, limit int) ([]models.ProgressEntry, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
