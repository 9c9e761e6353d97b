package service

import "errors"

// Validation errors.
var (
	ErrInvalidEmail         = errors.New("valid email is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrCredentialsRequired  = errors.New("email and password are required")
	ErrMissingToken         = errors.New("token is required")
	ErrMissingEmailClaim    = errors.New("access token carries no email")
	ErrEmptyProfileUpdate   = errors.New("nothing to update")
	ErrInvalidUsername      = errors.New("invalid username")
	ErrEmptyMessage         = errors.New("message is required")
	ErrMessageTooLong       = errors.New("message is too long")
	ErrInvalidTier          = errors.New("invalid price tier, must be 'premium' or 'pro'")
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrInvalidMacroPlan     = errors.New("invalid macro plan")
	ErrInvalidProgressEntry = errors.New("invalid progress entry")
	ErrInvalidWebhook       = errors.New("invalid webhook")
)

// Authorization and verification errors.
var (
	ErrInvalidSessionToken      = errors.New("invalid token")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserNotFound             = errors.New("user not found")
	ErrUserBlocked              = errors.New("user is blocked")
	ErrEmailNotVerified         = errors.New("please verify your email before logging in")
	ErrEmailAlreadyVerified     = errors.New("email is already verified")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrDailyLimitReached        = errors.New("daily message limit reached, upgrade to premium for unlimited messages")
)

// Conflict errors.
var (
	ErrUserAlreadyExists = errors.New("user already exists, please sign in instead")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrIdentityMismatch  = errors.New("account is linked to a different identity")
	ErrIdentityNotLinked = errors.New("account has no identity store user")
)

// Upstream and persistence errors.
var (
	ErrUserCreationFailed   = errors.New("failed to create user")
	ErrIdentityUnavailable  = errors.New("identity store is unavailable")
	ErrIdentityUpdateFailed = errors.New("failed to update identity store user")
	ErrEmailDeliveryFailed  = errors.New("failed to send email")
	ErrBillingUnavailable   = errors.New("billing is not configured")
	ErrCheckoutFailed       = errors.New("failed to create checkout session")
	ErrNotFound             = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
