package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/fitcoach/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned when the Authorization header
// does not carry a bearer token.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseIdentityToken validates an identity-store access token signed with
// HS256 and returns its claims.
//
// Validation includes the signature, the algorithm, the expiration claim
// and presence of a subject (the identity user id).
//
// Example usage:
//
//	claims, err := utils.ParseIdentityToken(rawToken, jwtSecret)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ParseIdentityToken(tokenString, secret string) (models.IdentityClaims, error) {
	if secret == "" {
		return models.IdentityClaims{}, errors.New("empty token secret")
	}

	claims := models.IdentityClaims{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.IdentityClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.IdentityClaims{}, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
