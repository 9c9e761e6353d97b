// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the canonical application profile stored in the users table.
//
// The row is owned by the backend. SupabaseID is only a weak reference into
// the identity store and may be empty until the account is linked.
type User struct {
	// ID is the internal numeric primary key.
	ID int64 `json:"id"`

	// Username is unique across all users. Defaults to the local part of
	// the email address with a numeric suffix on collision.
	Username string `json:"username"`

	// Email is unique and is the natural join key with the identity store
	// while SupabaseID is still empty.
	Email string `json:"email"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`

	// SupabaseID links the row to the identity-store account. Empty when
	// the account has not been linked yet.
	SupabaseID string `json:"-"`

	StripeCustomerID     string `json:"-"`
	StripeSubscriptionID string `json:"-"`

	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`

	// DailyMessageCount counts chat messages sent on LastMessageDate.
	DailyMessageCount int `json:"-"`

	// LastMessageDate is the UTC day (YYYY-MM-DD) of the last chat message.
	LastMessageDate string `json:"-"`

	IsBlocked bool `json:"-"`

	// EmailVerified is the only trusted verification signal. The identity
	// store's own confirmation flag is a best-effort mirror of it.
	EmailVerified bool `json:"emailVerified"`

	// EmailVerificationToken is the live single-use verification token.
	// Non-empty implies EmailVerified is false.
	EmailVerificationToken string `json:"-"`

	PasswordResetToken       string     `json:"-"`
	PasswordResetTokenExpiry *time.Time `json:"-"`

	DeletedAt *time.Time `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}

// TableName returns the database table that stores users.
func (u User) TableName() string {
	return "users"
}

// IsLinked reports whether the row is linked to an identity-store account.
func (u User) IsLinked() bool {
	return u.SupabaseID != ""
}

// MessagesToday returns the number of chat messages the user has sent on
// the given UTC day.
func (u User) MessagesToday(day string) int {
	if u.LastMessageDate != day {
		return 0
	}
	return u.DailyMessageCount
}

// UserView is the sanitized projection of a User returned to clients.
// It never carries token material or identity-store identifiers.
type UserView struct {
	ID                 int64              `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Username           string             `json:"username"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`
	EmailVerified      bool               `json:"emailVerified"`
	MessageCount       int                `json:"messageCount"`
	MaxMessages        int                `json:"maxMessages"`
}

// UnlimitedMessages is reported as MaxMessages for paid tiers.
const UnlimitedMessages = 999999

// View builds the client projection of u. freeDailyMessages is the daily
// chat allowance of the free tier.
func (u User) View(today string, freeDailyMessages int) UserView {
	maxMessages := UnlimitedMessages
	if u.SubscriptionTier == TierFree {
		maxMessages = freeDailyMessages
	}

	status := u.SubscriptionStatus
	if status == "" {
		status = StatusInactive
	}
	tier := u.SubscriptionTier
	if tier == "" {
		tier = TierFree
	}

	return UserView{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Username:           u.Username,
		SubscriptionStatus: status,
		SubscriptionTier:   tier,
		EmailVerified:      u.EmailVerified,
		MessageCount:       u.MessagesToday(today),
		MaxMessages:        maxMessages,
	}
}

// ProfileUpdate carries a partial profile change. Nil fields are left as is.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.FirstName == nil && p.LastName == nil && p.Phone == nil
}
