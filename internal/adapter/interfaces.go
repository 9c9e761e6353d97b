// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter contains the outbound integrations of the fitcoach server:
// the identity store (Supabase Auth), transactional email, the AI coach and
// the payment provider.
//
// Every adapter receives the request context and is bounded by its own
// timeout. Non-2xx responses of REST upstreams are translated into the
// sentinel errors of this package by mapHTTPError.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fitcoach/models"
)

// IdentityMirror is the narrow, best-effort side of the identity store used
// after a local verification succeeds. Its failures never change the local
// verification outcome.
type IdentityMirror interface {
	// ConfirmEmail marks the identity user's email as confirmed.
	ConfirmEmail(ctx context.Context, identityID string) error
}

// IdentityStore is the external authentication provider.
//
// The local users table stays the authority for verification and
// subscription state; the identity store only proves who the caller is.
type IdentityStore interface {
	IdentityMirror

	// VerifyAccessToken validates an access token and returns its claims.
	// Returns ErrInvalidAccessToken when the token is rejected.
	VerifyAccessToken(ctx context.Context, accessToken string) (models.IdentityClaims, error)

	// PasswordLogin exchanges email and password for a session.
	// Returns ErrInvalidCredentials when the pair is rejected.
	PasswordLogin(ctx context.Context, email, password string) (models.Session, error)

	// CreateUser creates an unconfirmed identity user.
	// Returns ErrIdentityUserExists when the email is taken.
	CreateUser(ctx context.Context, email, password string) (models.IdentityUser, error)

	// DeleteUser removes an identity user. Used to roll back a failed signup.
	DeleteUser(ctx context.Context, identityID string) error

	// UpdatePassword replaces the identity user's password.
	UpdatePassword(ctx context.Context, identityID, password string) error

	// FindUserByEmail scans the identity store's user directory.
	// Returns ErrIdentityUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.IdentityUser, error)
}

// NotificationSender sends transactional email. Callers decide whether a
// failure is fatal to their operation.
type NotificationSender interface {
	SendVerificationEmail(ctx context.Context, to, link string) error
	SendPasswordResetEmail(ctx context.Context, to, firstName, link string) error
	SendWelcomeEmail(ctx context.Context, to, firstName string) error
	SendSubscriptionConfirmation(ctx context.Context, to, firstName string, tier models.SubscriptionTier) error
}

// Coach produces AI coach replies for a conversation.
type Coach interface {
	// Reply returns the next assistant message for messages, which must
	// start with the system prompt and end with the newest user message.
	Reply(ctx context.Context, messages []models.CoachMessage) (string, error)
}

// BillingProvider creates hosted checkouts and verifies webhooks.
type BillingProvider interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error)

	// ParseWebhook verifies the signature header and decodes payload.
	// Returns ErrInvalidWebhookSignature when verification fails.
	ParseWebhook(payload []byte, signature string) (models.BillingEvent, error)
}
