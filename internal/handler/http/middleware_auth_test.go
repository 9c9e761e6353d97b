package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "no token", header: "Bearer", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: utils.ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		reconcileErr error
		wantStatus   int
		wantNext     bool
	}{
		{name: "valid token", header: "Bearer jwt", wantStatus: http.StatusOK, wantNext: true},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token jwt", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer jwt", reconcileErr: service.ErrInvalidSessionToken, wantStatus: http.StatusUnauthorized},
		{name: "unverified user", header: "Bearer jwt", reconcileErr: service.ErrEmailNotVerified, wantStatus: http.StatusForbidden},
		{name: "blocked user", header: "Bearer jwt", reconcileErr: service.ErrUserBlocked, wantStatus: http.StatusForbidden},
		{name: "unknown user", header: "Bearer jwt", reconcileErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				reconcileFn: func(_ context.Context, token string) (models.User, error) {
					assert.Equal(t, "jwt", token)
					return testUser, tt.reconcileErr
				},
			}
			h := newTestHandler(&service.Services{AuthService: auth})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			}
		})
	}
}

func TestAuth_StoresUserAndTokenInContext(t *testing.T) {
	h := newTestHandler(nil)

	var (
		gotUser  models.User
		gotToken string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		gotUser, ok = utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		gotToken, ok = utils.GetAccessTokenFromContext(r.Context())
		require.True(t, ok)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testAccessToken)
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, testUser.ID, gotUser.ID)
	assert.Equal(t, testAccessToken, gotToken)
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testAccessToken)
	originalCtx := req.Context()

	h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	_, ok := utils.GetUserFromContext(originalCtx)
	assert.False(t, ok)
}
