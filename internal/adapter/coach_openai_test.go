package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoach(serverURL string) Coach {
	return NewOpenAICoach(config.Coach{
		OpenAIAPIKey: "sk-test",
		OpenAIURL:    serverURL + "/v1/",
		Model:        "gpt-4o",
		MaxTokens:    1000,
		Temperature:  0.7,
	}, logger.Nop())
}

func completion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	}
}

func TestOpenAICoach_Reply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body := decodeBody(t, r)
		assert.Equal(t, "gpt-4o", body["model"])
		assert.EqualValues(t, 1000, body["max_tokens"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])
		assert.Equal(t, "How many squats?", messages[1].(map[string]any)["content"])

		writeJSON(t, w, http.StatusOK, completion("  Start with 3 sets of 10.  "))
	}))
	defer srv.Close()

	reply, err := newTestCoach(srv.URL).Reply(context.Background(), []models.CoachMessage{
		{Role: models.RoleSystem, Content: "You are a coach"},
		{Role: models.RoleUser, Content: "How many squats?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Start with 3 sets of 10.", reply)
}

func TestOpenAICoach_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, completion("   "))
	}))
	defer srv.Close()

	_, err := newTestCoach(srv.URL).Reply(context.Background(), []models.CoachMessage{{Role: models.RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAICoach_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusTooManyRequests, map[string]any{
			"error": map[string]any{"message": "rate limited", "type": "requests", "code": "rate_limit_exceeded"},
		})
	}))
	defer srv.Close()

	_, err := newTestCoach(srv.URL).Reply(context.Background(), []models.CoachMessage{{Role: models.RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestOpenAICoach_NotConfigured(t *testing.T) {
	c := NewOpenAICoach(config.Coach{}, logger.Nop())

	_, err := c.Reply(context.Background(), []models.CoachMessage{{Role: models.RoleUser, Content: "hi"}})
	assert.ErrorIs(t, err, ErrCoachNotConfigured)
}
