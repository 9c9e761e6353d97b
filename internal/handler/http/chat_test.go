package http

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendChatMessage_Success(t *testing.T) {
	chat := &mockChatService{
		sendFn: func(_ context.Context, user models.User, message string) (models.ChatMessage, error) {
			assert.Equal(t, testUser.ID, user.ID)
			assert.Equal(t, "I weigh 180 lbs", message)
			return models.ChatMessage{
				ID:        2,
				UserID:    user.ID,
				Role:      models.RoleAssistant,
				Content:   "Nice work!",
				CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			}, nil
		},
	}
	h := newTestHandler(&service.Services{ChatService: chat})

	rr := serve(t, h, http.MethodPost, "/api/chat/message", `{"message":"I weigh 180 lbs"}`, authorized()...)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.ChatResponse](t, rr.Body.Bytes())
	assert.Equal(t, models.RoleAssistant, resp.Message.Role)
	assert.Equal(t, "Nice work!", resp.Message.Content)
}

func TestSendChatMessage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus int
	}{
		{name: "daily limit", sendErr: service.ErrDailyLimitReached, wantStatus: http.StatusTooManyRequests},
		{name: "empty message", sendErr: service.ErrEmptyMessage, wantStatus: http.StatusBadRequest},
		{name: "store failure", sendErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &mockChatService{
				sendFn: func(context.Context, models.User, string) (models.ChatMessage, error) {
					return models.ChatMessage{}, tt.sendErr
				},
			}
			h := newTestHandler(&service.Services{ChatService: chat})

			rr := serve(t, h, http.MethodPost, "/api/chat/message", `{"message":"hi"}`, authorized()...)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSendChatMessage_LimitBody(t *testing.T) {
	chat := &mockChatService{
		sendFn: func(context.Context, models.User, string) (models.ChatMessage, error) {
			return models.ChatMessage{}, service.ErrDailyLimitReached
		},
	}
	h := newTestHandler(&service.Services{ChatService: chat})

	rr := serve(t, h, http.MethodPost, "/api/chat/message", `{"message":"hi"}`, authorized()...)

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	resp := decodeBody[models.ChatLimitResponse](t, rr.Body.Bytes())
	assert.True(t, resp.LimitReached)
	assert.Equal(t, "Daily message limit reached. Upgrade to Premium for unlimited messages.", resp.Message)
}

func TestChatHistory_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantStatus int
	}{
		{name: "default limit", target: "/api/chat/messages", wantLimit: 0, wantStatus: http.StatusOK},
		{name: "explicit limit", target: "/api/chat/messages?limit=20", wantLimit: 20, wantStatus: http.StatusOK},
		{name: "not a number", target: "/api/chat/messages?limit=ten", wantStatus: http.StatusBadRequest},
		{name: "negative", target: "/api/chat/messages?limit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &mockChatService{
				historyFn: func(_ context.Context, _ models.User, limit int) ([]models.ChatMessage, error) {
					assert.Equal(t, tt.wantLimit, limit)
					return []models.ChatMessage{{ID: 1, Role: models.RoleUser, Content: "hi"}}, nil
				},
			}
			h := newTestHandler(&service.Services{ChatService: chat})

			rr := serve(t, h, http.MethodGet, tt.target, "", authorized()...)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decodeBody[[]models.ChatMessage](t, rr.Body.Bytes()), 1)
			}
		})
	}
}
