package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapters(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:      config.App{FrontendURL: "https://www.fitlyai.com"},
		Identity: config.Identity{URL: "https://xyz.supabase.co", ServiceRoleKey: "key"},
	}

	a, err := NewAdapters(cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, a.IdentityStore)
	assert.NotNil(t, a.Notifier)
	assert.NotNil(t, a.Coach)
	assert.NotNil(t, a.Billing)

	cfg.Identity.URL = ""
	_, err = NewAdapters(cfg, logger.Nop())
	assert.Error(t, err)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			resp := doStatus(t, tt.status, "details")
			err := mapHTTPError(resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "details")
		})
	}

	assert.NoError(t, mapHTTPError(doStatus(t, http.StatusNoContent, "")))

	err := mapHTTPError(doStatus(t, http.StatusServiceUnavailable, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: Service Unavailable")
}

func doStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" https://api.resend.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://api.resend.com", got)

	got, err = normalizeBaseURL("xyz.supabase.co")
	require.NoError(t, err)
	assert.Equal(t, "https://xyz.supabase.co", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}
