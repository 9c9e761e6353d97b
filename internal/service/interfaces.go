package service

import (
	"context"

	"github.com/MKhiriev/fitcoach/models"
)

// AuthService owns signup, verification, reconciliation and password reset.
//
// The local users table is the only verification authority. The identity
// store proves who the caller is and receives best-effort mirrors of local
// state.
type AuthService interface {
	// Signup creates an unverified account and emails a verification link.
	// origin is the public origin of the inbound request.
	Signup(ctx context.Context, req models.SignupRequest, origin string) (models.User, error)
	// Register is Signup with a mandatory password.
	Register(ctx context.Context, req models.SignupRequest, origin string) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)

	// Reconcile resolves an identity access token to a verified local user,
	// linking the row by email when needed.
	Reconcile(ctx context.Context, accessToken string) (models.User, error)

	// VerifyEmail consumes a verification token.
	VerifyEmail(ctx context.Context, token string) (models.User, error)
	ResendVerification(ctx context.Context, email, origin string) error
	SendVerificationForIdentity(ctx context.Context, identityID, email, origin string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type UserService interface {
	View(user models.User) models.UserView
	UpdateProfile(ctx context.Context, user models.User, update models.ProfileUpdate) (models.User, error)
	Delete(ctx context.Context, user models.User) error
}

type ChatService interface {
	History(ctx context.Context, user models.User, limit int) ([]models.ChatMessage, error)
	// Send stores message, asks the coach and returns the stored reply.
	Send(ctx context.Context, user models.User, message string) (models.ChatMessage, error)
}

type FitnessService interface {
	CreateGoal(ctx context.Context, user models.User, goal models.Goal) (models.Goal, error)
	ListGoals(ctx context.Context, user models.User) ([]models.Goal, error)

	CreateMacroPlan(ctx context.Context, user models.User, plan models.MacroPlan) (models.MacroPlan, error)
	ActiveMacroPlan(ctx context.Context, user models.User) (models.MacroPlan, error)

	AddProgress(ctx context.Context, user models.User, entry models.ProgressEntry) (models.ProgressEntry, error)
	// ListProgress returns the newest entries first. A zero goalID lists
	// entries of every goal.
	ListProgress(ctx context.Context, user models.User, goalID int64, limit int) ([]models.ProgressEntry, error)

	// ApplyChatActions detects tracking intents in a chat message, stores
	// them and returns a human-readable line per stored action.
	ApplyChatActions(ctx context.Context, user models.User, message string) []string
}

type BillingService interface {
	CreateCheckoutSession(ctx context.Context, user models.User, tier models.SubscriptionTier) (models.CheckoutSession, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
