package http

import (
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/utils"
)

// auth is an HTTP middleware that authenticates requests with an identity
// store access token.
//
// It extracts the bearer token from the "Authorization" header, reconciles it
// to a local user via [service.AuthService.Reconcile] and stores that user
// and the raw token in the request context. Downstream handlers never trust a
// user id supplied by the client.
//
// Rejections reuse the service error taxonomy: missing or malformed headers
// and invalid tokens are 401, blocked or unverified users 403, and unknown
// users 404.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Reconcile(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user)
		ctx = utils.WithAccessToken(ctx, token)

		l := logger.FromContext(ctx).With().Int64("user_id", user.ID).Logger()
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
