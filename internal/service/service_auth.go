// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fitcoach/internal/adapter"
	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

const (
	minPasswordLength   = 6
	maxUsernameLength   = 50
	maxUsernameAttempts = 20
)

// authService is the concrete implementation of AuthService.
//
// users is the only verification authority. identity proves who a caller is
// and mirror receives the confirmed state after a local verification.
type authService struct {
	users    store.UserRepository
	identity adapter.IdentityStore
	mirror   adapter.IdentityMirror
	notifier adapter.NotificationSender

	// baseURL overrides the request origin in verification links.
	baseURL     string
	frontendURL string
	resetTTL    time.Duration

	generateToken func() (string, error)
	now           func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The identity store doubles as
// the mirror that receives confirmed-email updates.
func NewAuthService(
	users store.UserRepository,
	identity adapter.IdentityStore,
	notifier adapter.NotificationSender,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		identity:      identity,
		mirror:        identity,
		notifier:      notifier,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		frontendURL:   strings.TrimRight(cfg.FrontendURL, "/"),
		resetTTL:      cfg.ResetTokenTTL,
		generateToken: utils.GenerateToken,
		now:           time.Now,
		logger:        logger,
	}
}

// Signup creates an unverified local user.
//
// Without a supabaseId but with a password an identity user is created
// first and removed again when the local insert fails. The verification
// email is best-effort: a failed send leaves a valid account behind.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest, origin string) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if !isValidEmail(email) {
		return models.User{}, ErrInvalidEmail
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, ErrUserAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "authService.Signup").Str("email", email).Msg("error looking up user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	username, err := a.resolveUsername(ctx, req.Username, email)
	if err != nil {
		return models.User{}, err
	}

	token, err := a.generateToken()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	identityID := strings.TrimSpace(req.SupabaseID)
	createdIdentity := false
	if identityID == "" && req.Password != "" {
		identityUser, err := a.identity.CreateUser(ctx, email, req.Password)
		if err != nil {
			if errors.Is(err, adapter.ErrIdentityUserExists) {
				return models.User{}, ErrUserAlreadyExists
			}
			log.Err(err).Str("func", "authService.Signup").Str("email", email).Msg("error creating identity user")
			return models.User{}, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
		}
		identityID = identityUser.ID
		createdIdentity = true
	}

	user, err := a.users.Create(ctx, models.User{
		Username:               username,
		Email:                  email,
		FirstName:              strings.TrimSpace(req.FirstName),
		LastName:               strings.TrimSpace(req.LastName),
		SupabaseID:             identityID,
		SubscriptionStatus:     models.StatusInactive,
		SubscriptionTier:       models.TierFree,
		EmailVerificationToken: token,
	})
	if err != nil {
		if createdIdentity {
			if delErr := a.identity.DeleteUser(ctx, identityID); delErr != nil {
				log.Err(delErr).Str("func", "authService.Signup").Str("identity_id", identityID).Msg("error rolling back identity user")
			}
		}

		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists), errors.Is(err, store.ErrIdentityAlreadyLinked):
			return models.User{}, ErrUserAlreadyExists
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "authService.Signup").Str("email", email).Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrUserCreationFailed, err)
	}

	if err := a.notifier.SendVerificationEmail(ctx, user.Email, a.verificationLink(origin, token)); err != nil {
		log.Err(err).
			Str("func", "authService.Signup").
			Int64("user_id", user.ID).
			Str("email", user.Email).
			Msg("verification email was not sent")
	}

	return user, nil
}

func (a *authService) Register(ctx context.Context, req models.SignupRequest, origin string) (models.User, error) {
	if req.Password == "" {
		return models.User{}, ErrPasswordRequired
	}
	return a.Signup(ctx, req, origin)
}

// Login exchanges credentials for an identity session and resolves the
// local user behind it. Unverified and blocked users get no session.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return models.User{}, models.Session{}, ErrCredentialsRequired
	}

	session, err := a.identity.PasswordLogin(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, adapter.ErrInvalidCredentials) {
			return models.User{}, models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Str("email", email).Msg("identity store login failed")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}

	identityID, identityEmail := session.User.ID, session.User.Email
	if identityID == "" {
		claims, err := a.identity.VerifyAccessToken(ctx, session.AccessToken)
		if err != nil {
			log.Err(err).Str("func", "authService.Login").Str("email", email).Msg("issued access token was rejected")
			return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
		}
		identityID, identityEmail = claims.Subject, claims.Email
	}
	if identityEmail == "" {
		identityEmail = email
	}

	user, err := a.resolveIdentity(ctx, identityID, identityEmail)
	if err != nil {
		return models.User{}, models.Session{}, err
	}
	if err := authorize(user); err != nil {
		return models.User{}, models.Session{}, err
	}

	return user, session, nil
}

// Reconcile maps an identity access token onto a local user.
func (a *authService) Reconcile(ctx context.Context, accessToken string) (models.User, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return models.User{}, ErrInvalidSessionToken
	}

	claims, err := a.identity.VerifyAccessToken(ctx, accessToken)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.Reconcile").Msg("access token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if claims.Subject == "" {
		return models.User{}, ErrInvalidSessionToken
	}

	user, err := a.resolveIdentity(ctx, claims.Subject, claims.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := authorize(user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// resolveIdentity finds the local row of identityID, linking the row that
// owns email when none is linked yet.
func (a *authService) resolveIdentity(ctx context.Context, identityID, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindBySupabaseID(ctx, identityID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "authService.resolveIdentity").Str("identity_id", identityID).Msg("error looking up user by identity id")
		return models.User{}, err
	}

	email = normalizeEmail(email)
	if email == "" {
		return models.User{}, ErrMissingEmailClaim
	}

	user, err = a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "authService.resolveIdentity").Str("email", email).Msg("error looking up user by email")
		return models.User{}, err
	}

	if user.IsLinked() {
		if user.SupabaseID != identityID {
			log.Warn().
				Str("func", "authService.resolveIdentity").
				Int64("user_id", user.ID).
				Str("identity_id", identityID).
				Msg("user row is linked to a different identity")
			return models.User{}, ErrIdentityMismatch
		}
		return user, nil
	}

	return a.linkIdentity(ctx, user, identityID)
}

// linkIdentity stores identityID on an unlinked row. When another row won
// the identity concurrently, that row is returned.
func (a *authService) linkIdentity(ctx context.Context, user models.User, identityID string) (models.User, error) {
	log := logger.FromContext(ctx)

	linked, err := a.users.LinkSupabaseID(ctx, user.ID, identityID)
	switch {
	case err == nil:
		if linked.SupabaseID != identityID {
			return models.User{}, ErrIdentityMismatch
		}
		log.Info().Int64("user_id", user.ID).Str("identity_id", identityID).Msg("user linked to identity")
		return linked, nil
	case errors.Is(err, store.ErrIdentityAlreadyLinked):
		owner, findErr := a.users.FindBySupabaseID(ctx, identityID)
		if findErr != nil {
			log.Err(findErr).Str("func", "authService.linkIdentity").Str("identity_id", identityID).Msg("error re-reading linked user")
			return models.User{}, findErr
		}
		return owner, nil
	default:
		log.Err(err).Str("func", "authService.linkIdentity").Int64("user_id", user.ID).Msg("error linking identity")
		return models.User{}, err
	}
}

// authorize is the gate every authenticated flow passes after linkage.
func authorize(user models.User) error {
	if user.IsBlocked {
		return ErrUserBlocked
	}
	if !user.EmailVerified {
		return ErrEmailNotVerified
	}
	return nil
}

// VerifyEmail consumes token and mirrors the verified state into the
// identity store. Mirror failures never fail the verification.
func (a *authService) VerifyEmail(ctx context.Context, token string) (models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.User{}, ErrMissingToken
	}

	user, err := a.users.ConsumeVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrInvalidVerificationToken) {
			return models.User{}, ErrInvalidVerificationToken
		}
		logger.FromContext(ctx).Err(err).Str("func", "authService.VerifyEmail").Msg("error consuming verification token")
		return models.User{}, err
	}

	a.mirrorVerification(ctx, user)

	if err := a.notifier.SendWelcomeEmail(ctx, user.Email, user.FirstName); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.VerifyEmail").
			Int64("user_id", user.ID).
			Msg("welcome email was not sent")
	}

	return user, nil
}

func (a *authService) mirrorVerification(ctx context.Context, user models.User) {
	log := logger.FromContext(ctx).With().
		Str("func", "authService.mirrorVerification").
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Logger()

	identityID := user.SupabaseID
	if identityID == "" {
		identityUser, err := a.identity.FindUserByEmail(ctx, user.Email)
		if err != nil {
			log.Warn().Err(err).Msg("no identity user to mirror verification to")
			return
		}

		linked, err := a.linkIdentity(ctx, user, identityUser.ID)
		if err != nil {
			log.Warn().Err(err).Msg("error linking identity after verification")
			return
		}
		if linked.ID != user.ID {
			log.Warn().Str("identity_id", identityUser.ID).Msg("identity is linked to another user, mirror skipped")
			return
		}
		identityID = linked.SupabaseID
	}

	if err := a.mirror.ConfirmEmail(ctx, identityID); err != nil {
		log.Error().Err(err).Str("identity_id", identityID).Msg("error mirroring email confirmation")
	}
}

// ResendVerification replaces the pending token of email with a fresh one.
func (a *authService) ResendVerification(ctx context.Context, email, origin string) error {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return a.reissueVerification(ctx, user, origin)
}

// SendVerificationForIdentity resends the verification email of the user
// linked to identityID, linking by email first when needed.
func (a *authService) SendVerificationForIdentity(ctx context.Context, identityID, email, origin string) error {
	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		return a.ResendVerification(ctx, email, origin)
	}

	user, err := a.resolveIdentity(ctx, identityID, email)
	if err != nil {
		return err
	}

	return a.reissueVerification(ctx, user, origin)
}

func (a *authService) reissueVerification(ctx context.Context, user models.User, origin string) error {
	log := logger.FromContext(ctx)

	if user.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	token, err := a.generateToken()
	if err != nil {
		return err
	}

	if err := a.users.SetVerificationToken(ctx, user.ID, token); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "authService.reissueVerification").Int64("user_id", user.ID).Msg("error storing verification token")
		return err
	}

	if err := a.notifier.SendVerificationEmail(ctx, user.Email, a.verificationLink(origin, token)); err != nil {
		log.Err(err).
			Str("func", "authService.reissueVerification").
			Int64("user_id", user.ID).
			Str("email", user.Email).
			Msg("verification email was not sent")
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	return nil
}

// RequestPasswordReset issues a reset token for email. Unknown addresses
// succeed silently so the endpoint does not reveal registered emails.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := a.generateToken()
	if err != nil {
		return err
	}

	if err := a.users.SetPasswordResetToken(ctx, user.ID, token, a.now().Add(a.resetTTL)); err != nil {
		log.Err(err).Str("func", "authService.RequestPasswordReset").Int64("user_id", user.ID).Msg("error storing reset token")
		return err
	}

	link := a.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := a.notifier.SendPasswordResetEmail(ctx, user.Email, user.FirstName, link); err != nil {
		log.Err(err).
			Str("func", "authService.RequestPasswordReset").
			Int64("user_id", user.ID).
			Str("email", user.Email).
			Msg("password reset email was not sent")
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	return nil
}

// ResetPassword sets a new identity-store password for the owner of an
// unexpired token. The token stays valid when the identity store rejects
// the update.
func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidResetToken
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := a.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrInvalidResetToken) {
			return ErrInvalidResetToken
		}
		return err
	}

	if !user.IsLinked() {
		identityUser, err := a.identity.FindUserByEmail(ctx, user.Email)
		if err != nil {
			if errors.Is(err, adapter.ErrIdentityUserNotFound) {
				return ErrIdentityNotLinked
			}
			log.Err(err).Str("func", "authService.ResetPassword").Int64("user_id", user.ID).Msg("error looking up identity user")
			return fmt.Errorf("%w: %w", ErrIdentityUpdateFailed, err)
		}

		linked, err := a.linkIdentity(ctx, user, identityUser.ID)
		if err != nil {
			return err
		}
		if linked.ID != user.ID {
			return ErrIdentityMismatch
		}
		user = linked
	}

	if err := a.identity.UpdatePassword(ctx, user.SupabaseID, newPassword); err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Int64("user_id", user.ID).Msg("error updating identity password")
		return fmt.Errorf("%w: %w", ErrIdentityUpdateFailed, err)
	}

	// The password is already changed at this point.
	if err := a.users.ClearPasswordResetToken(ctx, user.ID, token); err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Int64("user_id", user.ID).Msg("error clearing reset token")
	}

	return nil
}

func (a *authService) verificationLink(origin, token string) string {
	base := a.baseURL
	if base == "" {
		base = strings.TrimRight(origin, "/")
	}
	return base + "/api/verify-email?token=" + url.QueryEscape(token)
}

// resolveUsername returns requested when it is free. Without a requested
// name the email local part is used and suffixed until it is unique.
func (a *authService) resolveUsername(ctx context.Context, requested, email string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		if len(requested) > maxUsernameLength {
			return "", ErrInvalidUsername
		}
		exists, err := a.users.UsernameExists(ctx, requested)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrUsernameTaken
		}
		return requested, nil
	}

	base := usernameFromEmail(email)
	candidate := base
	for i := 1; i <= maxUsernameAttempts; i++ {
		exists, err := a.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "_" + strconv.Itoa(i)
	}

	suffix, err := a.generateToken()
	if err != nil {
		return "", err
	}
	return base + "_" + suffix[:8], nil
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" {
		name = "user"
	}
	if len(name) > maxUsernameLength-10 {
		name = name[:maxUsernameLength-10]
	}
	return name
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && domain != "" && !strings.ContainsAny(email, " \t\r\n")
}
