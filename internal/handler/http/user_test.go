package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe_ReturnsView(t *testing.T) {
	h := newTestHandler(nil)

	rr := serve(t, h, http.MethodGet, "/api/user/me", "", authorized()...)

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeBody[models.UserView](t, rr.Body.Bytes())
	assert.Equal(t, testUser.ID, view.ID)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, models.TierFree, view.SubscriptionTier)
}

func TestMe_RequiresAuth(t *testing.T) {
	h := newTestHandler(nil)

	rr := serve(t, h, http.MethodGet, "/api/user/me", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateProfile_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		updateErr  error
		wantStatus int
	}{
		{name: "success", body: `{"username":"alice2"}`, wantStatus: http.StatusOK},
		{name: "taken username", body: `{"username":"bob"}`, updateErr: service.ErrUsernameTaken, wantStatus: http.StatusConflict},
		{name: "empty update", body: `{}`, updateErr: service.ErrEmptyProfileUpdate, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				updateProfileFn: func(_ context.Context, user models.User, update models.ProfileUpdate) (models.User, error) {
					assert.Equal(t, testUser.ID, user.ID)
					if tt.updateErr != nil {
						return models.User{}, tt.updateErr
					}
					user.Username = *update.Username
					return user, nil
				},
			}
			h := newTestHandler(&service.Services{UserService: users})

			rr := serve(t, h, http.MethodPatch, "/api/user/profile", tt.body, authorized()...)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.updateErr == nil {
				assert.Equal(t, "alice2", decodeBody[models.UserView](t, rr.Body.Bytes()).Username)
			}
		})
	}
}

func TestDeleteUser_SoftDeletesCurrentUser(t *testing.T) {
	var deletedID int64
	users := &mockUserService{
		deleteFn: func(_ context.Context, user models.User) error {
			deletedID = user.ID
			return nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	rr := serve(t, h, http.MethodDelete, "/api/user", "", authorized()...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testUser.ID, deletedID)
}
