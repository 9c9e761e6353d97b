package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

const (
	identityUsersPerPage = 1000
	identityMaxPages     = 50
)

const (
	pathUser       = "/auth/v1/user"
	pathToken      = "/auth/v1/token"
	pathAdminUsers = "/auth/v1/admin/users"
	pathAdminUser  = "/auth/v1/admin/users/{id}"
)

type supabaseIdentityStore struct {
	client *utils.HTTPClient

	serviceRoleKey string
	anonKey        string
	jwtSecret      string
	perPage        int

	lookups singleflight.Group

	logger *logger.Logger
}

type passwordGrantResponse struct {
	models.Session
	User models.IdentityUser `json:"user"`
}

type identityUsersPage struct {
	Users []models.IdentityUser `json:"users"`
}

// NewSupabaseIdentityStore constructs the REST implementation of
// [IdentityStore] on top of the Supabase Auth API.
//
// Admin calls are authorized with the service-role key; password logins use
// the anon key. When cfg.JWTSecret is set, access tokens are verified
// locally without a network round trip.
func NewSupabaseIdentityStore(cfg config.Identity, logger *logger.Logger) (IdentityStore, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity store url: %w", err)
	}
	if cfg.ServiceRoleKey == "" {
		return nil, errors.New("empty identity service role key")
	}

	anonKey := cfg.AnonKey
	if anonKey == "" {
		anonKey = cfg.ServiceRoleKey
	}

	return &supabaseIdentityStore{
		client:         utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		serviceRoleKey: cfg.ServiceRoleKey,
		anonKey:        anonKey,
		jwtSecret:      cfg.JWTSecret,
		perPage:        identityUsersPerPage,
		logger:         logger,
	}, nil
}

func (s *supabaseIdentityStore) VerifyAccessToken(ctx context.Context, accessToken string) (models.IdentityClaims, error) {
	if accessToken == "" {
		return models.IdentityClaims{}, ErrInvalidAccessToken
	}

	if s.jwtSecret != "" {
		claims, err := utils.ParseIdentityToken(accessToken, s.jwtSecret)
		if err != nil {
			return models.IdentityClaims{}, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
		}
		return claims, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("apikey", s.anonKey).
		SetAuthToken(accessToken).
		Get(pathUser)
	if err != nil {
		return models.IdentityClaims{}, fmt.Errorf("%w: get user: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotFound) {
			return models.IdentityClaims{}, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
		}
		return models.IdentityClaims{}, err
	}

	var user models.IdentityUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.IdentityClaims{}, fmt.Errorf("decode identity user: %w", err)
	}
	if user.ID == "" {
		return models.IdentityClaims{}, ErrInvalidAccessToken
	}

	claims := models.IdentityClaims{Email: user.Email}
	claims.Subject = user.ID
	return claims, nil
}

func (s *supabaseIdentityStore) PasswordLogin(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("apikey", s.anonKey).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		Post(pathToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: password grant: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnprocessableEntity) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Session{}, err
	}

	var grant passwordGrantResponse
	if err = json.Unmarshal(resp.Body(), &grant); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if grant.AccessToken == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	session := grant.Session
	session.User = grant.User
	return session, nil
}

func (s *supabaseIdentityStore) CreateUser(ctx context.Context, email, password string) (models.IdentityUser, error) {
	resp, err := s.adminRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"email_confirm": false,
		}).
		Post(pathAdminUsers)
	if err != nil {
		return models.IdentityUser{}, fmt.Errorf("%w: create user: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if isUserExistsError(err) {
			return models.IdentityUser{}, fmt.Errorf("%w: %w", ErrIdentityUserExists, err)
		}
		return models.IdentityUser{}, err
	}

	var user models.IdentityUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.IdentityUser{}, fmt.Errorf("decode identity user: %w", err)
	}
	if user.ID == "" {
		return models.IdentityUser{}, ErrEmptyIdentityUserID
	}

	return user, nil
}

// DeleteUser treats an already deleted user as success.
func (s *supabaseIdentityStore) DeleteUser(ctx context.Context, identityID string) error {
	if identityID == "" {
		return ErrEmptyIdentityUserID
	}

	resp, err := s.adminRequest(ctx).
		SetPathParam("id", identityID).
		Delete(pathAdminUser)
	if err != nil {
		return fmt.Errorf("%w: delete user: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.Debug().Str("func", "supabaseIdentityStore.DeleteUser").
			Str("identity_id", identityID).Msg("identity user already deleted")
	}

	return nil
}

func (s *supabaseIdentityStore) ConfirmEmail(ctx context.Context, identityID string) error {
	return s.updateUser(ctx, identityID, map[string]any{"email_confirm": true})
}

func (s *supabaseIdentityStore) UpdatePassword(ctx context.Context, identityID, password string) error {
	return s.updateUser(ctx, identityID, map[string]any{"password": password})
}

// FindUserByEmail pages through the admin user listing. Concurrent lookups
// of the same email share one scan.
func (s *supabaseIdentityStore) FindUserByEmail(ctx context.Context, email string) (models.IdentityUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.IdentityUser{}, ErrIdentityUserNotFound
	}

	v, err, _ := s.lookups.Do(email, func() (any, error) {
		return s.scanUsers(ctx, email)
	})
	if err != nil {
		return models.IdentityUser{}, err
	}

	return v.(models.IdentityUser), nil
}

func (s *supabaseIdentityStore) scanUsers(ctx context.Context, email string) (models.IdentityUser, error) {
	for page := 1; page <= identityMaxPages; page++ {
		resp, err := s.adminRequest(ctx).
			SetQueryParams(map[string]string{
				"page":     strconv.Itoa(page),
				"per_page": strconv.Itoa(s.perPage),
			}).
			Get(pathAdminUsers)
		if err != nil {
			return models.IdentityUser{}, fmt.Errorf("%w: list users: %w", ErrRequestFailed, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return models.IdentityUser{}, err
		}

		var users identityUsersPage
		if err = json.Unmarshal(resp.Body(), &users); err != nil {
			return models.IdentityUser{}, fmt.Errorf("decode identity users: %w", err)
		}

		for _, user := range users.Users {
			if strings.EqualFold(user.Email, email) {
				return user, nil
			}
		}

		if len(users.Users) < s.perPage {
			break
		}
	}

	return models.IdentityUser{}, ErrIdentityUserNotFound
}

func (s *supabaseIdentityStore) updateUser(ctx context.Context, identityID string, attrs map[string]any) error {
	if identityID == "" {
		return ErrEmptyIdentityUserID
	}

	resp, err := s.adminRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", identityID).
		SetBody(attrs).
		Put(pathAdminUser)
	if err != nil {
		return fmt.Errorf("%w: update user: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrIdentityUserNotFound, err)
		}
		return err
	}

	return nil
}

func (s *supabaseIdentityStore) adminRequest(ctx context.Context) *resty.Request {
	return s.client.R().
		SetContext(ctx).
		SetHeader("apikey", s.serviceRoleKey).
		SetAuthToken(s.serviceRoleKey)
}

func isUserExistsError(err error) bool {
	if errors.Is(err, ErrConflict) {
		return true
	}
	if !errors.Is(err, ErrUnprocessableEntity) {
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already") || strings.Contains(msg, "email_exists")
}
