package models

// SignupRequest is the body of POST /api/signup and POST /api/auth/register.
type SignupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Username   string `json:"username,omitempty"`
	SupabaseID string `json:"supabaseId,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenRequest carries a single token: a verification token for
// POST /api/auth/verify-email or an identity access token for
// POST /api/auth/supabase-verify.
type TokenRequest struct {
	Token string `json:"token"`
}

// EmailRequest is the body of the resend and password-reset request endpoints.
type EmailRequest struct {
	Email string `json:"email"`
}

// SendVerificationRequest is the body of POST /api/send-verification-email.
// UserID is the identity-store id of the account.
type SendVerificationRequest struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// ResetPasswordRequest is the body of POST /api/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ChatRequest is the body of POST /api/chat/message.
type ChatRequest struct {
	Message string `json:"message"`
}

// CheckoutSessionRequest is the body of POST /api/create-checkout-session.
type CheckoutSessionRequest struct {
	Price SubscriptionTier `json:"price"`
}
