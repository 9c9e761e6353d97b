package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims of an identity-store access token.
//
// The identity store signs access tokens with HS256; Subject carries the
// identity user id.
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// IdentityUser is an account record in the identity store.
type IdentityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	// EmailConfirmedAt is the identity store's own confirmation timestamp.
	// It is informational only and never used for authorization.
	EmailConfirmedAt string `json:"email_confirmed_at,omitempty"`
}

// Session is an identity-store session returned by a password login.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`

	User IdentityUser `json:"-"`
}
