// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the REST API.
//
// Web and mobile clients match on several of these texts, so they are part
// of the public contract and must not change wording.
package app

// Success messages.
const (
	MsgSignupSuccessful   = "Signup successful. Please check your email to verify your account."
	MsgRegisterSuccessful = "Registration successful. Please check your email to verify your account."
	MsgEmailVerified      = "Email verified successfully"
	MsgVerificationResent = "Verification email resent successfully"
	MsgVerificationSent   = "Verification email sent"
	MsgPasswordUpdated    = "Password successfully updated"
	MsgAccountDeleted     = "Account deleted"

	// MsgPasswordResetSent is returned whether or not the email is known.
	MsgPasswordResetSent = "If an account with that email exists, a password reset email has been sent."
)

// Failure messages.
const (
	MsgVerificationRequired = "Verification token is required"
	MsgVerificationInvalid  = "Invalid or expired verification token"
	MsgVerificationFailed   = "Verification failed"
	MsgTokenRequired        = "Token required"
	MsgInvalidToken         = "Invalid token"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgUserAlreadyExists    = "User already exists. Please sign in instead."
	MsgUserNotFound         = "User not found"
	MsgAccountBlocked       = "Account is blocked"
	MsgEmailNotVerified     = "Please verify your email before logging in."
	MsgEmailAlreadyVerified = "Email is already verified"
	MsgInvalidResetToken    = "Invalid or expired reset token"
	MsgUsernameTaken        = "Username is already taken"
	MsgEmailNotSent         = "Failed to send email"
	MsgPasswordResetFailed  = "Failed to send password reset email"
	MsgStripeNotConfigured  = "Stripe is not configured"
	MsgCheckoutFailed       = "Failed to create checkout session"
	MsgRouteNotFound        = "route not found"

	// MsgDailyLimitReached is returned with limitReached=true once a
	// free-tier user has used up the day's messages.
	MsgDailyLimitReached = "Daily message limit reached. Upgrade to Premium for unlimited messages."
)
