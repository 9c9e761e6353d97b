package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fitcoach/models"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "super-secret-jwt-token"

func signTestToken(t *testing.T, claims models.IdentityClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func validClaims() models.IdentityClaims {
	now := time.Now()
	return models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "2c6f0c7e-6d0e-4b8e-9f1b-2f7b8f1a0001",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "alice@example.com",
		Role:  "authenticated",
	}
}

func TestParseIdentityToken_Success(t *testing.T) {
	raw := signTestToken(t, validClaims(), jwt.SigningMethodHS256, []byte(testSecret))

	claims, err := ParseIdentityToken(raw, testSecret)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "2c6f0c7e-6d0e-4b8e-9f1b-2f7b8f1a0001" {
		t.Errorf("unexpected subject %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
}

func TestParseIdentityToken_InvalidKey(t *testing.T) {
	raw := signTestToken(t, validClaims(), jwt.SigningMethodHS256, []byte("other-secret"))

	_, err := ParseIdentityToken(raw, testSecret)

	if !errors.Is(err, jwt.ErrSignatureInvalid) {
		t.Errorf("expected signature error, got: %v", err)
	}
}

func TestParseIdentityToken_Expired(t *testing.T) {
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	raw := signTestToken(t, claims, jwt.SigningMethodHS256, []byte(testSecret))

	_, err := ParseIdentityToken(raw, testSecret)

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got: %v", err)
	}
}

func TestParseIdentityToken_MissingExpiry(t *testing.T) {
	claims := validClaims()
	claims.ExpiresAt = nil
	raw := signTestToken(t, claims, jwt.SigningMethodHS256, []byte(testSecret))

	if _, err := ParseIdentityToken(raw, testSecret); err == nil {
		t.Error("expected error for token without exp")
	}
}

func TestParseIdentityToken_WrongAlgorithm(t *testing.T) {
	raw := signTestToken(t, validClaims(), jwt.SigningMethodHS512, []byte(testSecret))

	if _, err := ParseIdentityToken(raw, testSecret); err == nil {
		t.Error("expected error for HS512 token")
	}
}

func TestParseIdentityToken_EmptySubject(t *testing.T) {
	claims := validClaims()
	claims.Subject = ""
	raw := signTestToken(t, claims, jwt.SigningMethodHS256, []byte(testSecret))

	if _, err := ParseIdentityToken(raw, testSecret); err == nil {
		t.Error("expected error for empty subject")
	}
}

func TestParseIdentityToken_Malformed(t *testing.T) {
	if _, err := ParseIdentityToken("not.a.jwt", testSecret); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseIdentityToken_EmptySecret(t *testing.T) {
	raw := signTestToken(t, validClaims(), jwt.SigningMethodHS256, []byte(testSecret))

	if _, err := ParseIdentityToken(raw, ""); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def", "abc.def", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"extra spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"three parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
