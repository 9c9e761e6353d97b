package models

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VerifyEmailResponse is returned by POST /api/auth/verify-email.
type VerifyEmailResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

// ReconcileResponse is returned by POST /api/auth/supabase-verify.
// Message is only set when Verified is false.
type ReconcileResponse struct {
	Verified bool      `json:"verified"`
	Message  string    `json:"message,omitempty"`
	User     *UserView `json:"user,omitempty"`
}

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	User    UserView `json:"user"`
	Session Session  `json:"session"`
}

// RegisterResponse is returned by POST /api/auth/register.
type RegisterResponse struct {
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// RegisteredUser is the minimal view of a freshly registered account.
type RegisteredUser struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}

// ChatResponse is returned by POST /api/chat/message.
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}

// ChatLimitResponse is returned when a free user runs out of messages.
type ChatLimitResponse struct {
	Message      string `json:"message"`
	LimitReached bool   `json:"limitReached"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// WebhookAck acknowledges a processed billing webhook.
type WebhookAck struct {
	Received bool `json:"received"`
}
