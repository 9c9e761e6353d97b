package adapter

import "errors"

// HTTP status sentinels produced by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// Identity store errors.
var (
	ErrInvalidAccessToken   = errors.New("invalid access token")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrIdentityUserNotFound = errors.New("identity user not found")
	ErrIdentityUserExists   = errors.New("identity user already exists")
	ErrEmptyIdentityUserID  = errors.New("empty identity user id")
)

// Notification, coach and billing errors.
var (
	ErrRequestFailed           = errors.New("outbound request failed")
	ErrEmailNotSent            = errors.New("email was not sent")
	ErrEmailNotConfigured      = errors.New("email transport is not configured")
	ErrCoachNotConfigured      = errors.New("coach is not configured")
	ErrEmptyCompletion         = errors.New("empty completion")
	ErrBillingNotConfigured    = errors.New("billing is not configured")
	ErrUnsupportedTier         = errors.New("unsupported subscription tier")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
)
