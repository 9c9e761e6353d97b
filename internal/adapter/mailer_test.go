package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTransport struct {
	sent []emailMessage
	err  error
}

func (r *recordingTransport) send(_ context.Context, msg emailMessage) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingTransport) name() string { return "recording" }

func newTestMailer(t *testing.T) (*mailer, *recordingTransport) {
	t.Helper()
	n, err := NewMailer(config.Email{From: "FitlyAI <no-reply@fitlyai.com>"}, "https://www.fitlyai.com", logger.Nop())
	require.NoError(t, err)

	m := n.(*mailer)
	rt := &recordingTransport{}
	m.transport = rt
	m.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return m, rt
}

func TestMailer_SendVerificationEmail(t *testing.T) {
	m, rt := newTestMailer(t)
	link := "https://api.fitlyai.com/api/verify-email?token=abc123"

	require.NoError(t, m.SendVerificationEmail(context.Background(), "alice@example.com", link))
	require.Len(t, rt.sent, 1)

	msg := rt.sent[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "FitlyAI <no-reply@fitlyai.com>", msg.From)
	assert.Equal(t, "Verify Your FitlyAI Account", msg.Subject)
	assert.Contains(t, msg.HTML, `href="https://api.fitlyai.com/api/verify-email?token=abc123"`)
	assert.Contains(t, msg.HTML, "2026 FitlyAI")
}

func TestMailer_SendPasswordResetEmail(t *testing.T) {
	m, rt := newTestMailer(t)

	require.NoError(t, m.SendPasswordResetEmail(context.Background(), "bob@example.com", "", "https://www.fitlyai.com/reset-password?token=t1"))
	require.Len(t, rt.sent, 1)
	assert.Equal(t, "Reset Your FitlyAI Password", rt.sent[0].Subject)
	assert.Contains(t, rt.sent[0].HTML, "Hi there,")
	assert.Contains(t, rt.sent[0].HTML, "reset-password?token=t1")
}

func TestMailer_EscapesUserInput(t *testing.T) {
	m, rt := newTestMailer(t)

	require.NoError(t, m.SendWelcomeEmail(context.Background(), "eve@example.com", "<script>x</script>"))
	require.Len(t, rt.sent, 1)
	assert.NotContains(t, rt.sent[0].HTML, "<script>")
	assert.Contains(t, rt.sent[0].HTML, "&lt;script&gt;")
}

func TestMailer_SendSubscriptionConfirmation(t *testing.T) {
	m, rt := newTestMailer(t)

	require.NoError(t, m.SendSubscriptionConfirmation(context.Background(), "a@example.com", "Ann", models.TierPro))
	require.Len(t, rt.sent, 1)
	assert.Equal(t, "Welcome to FitlyAI Pro - Let's Transform Your Fitness!", rt.sent[0].Subject)
	assert.Contains(t, rt.sent[0].HTML, "Advanced macro and calorie tracking")
	assert.Contains(t, rt.sent[0].HTML, "$19.99/month")

	err := m.SendSubscriptionConfirmation(context.Background(), "a@example.com", "Ann", models.TierFree)
	assert.ErrorIs(t, err, ErrUnsupportedTier)
	assert.Len(t, rt.sent, 1)
}

func TestMailer_TransportError(t *testing.T) {
	m, rt := newTestMailer(t)
	rt.err = ErrInternalServerError

	err := m.SendWelcomeEmail(context.Background(), "a@example.com", "Ann")
	assert.ErrorIs(t, err, ErrEmailNotSent)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestNewMailer_TransportSelection(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Email
		want string
	}{
		{"resend", config.Email{ResendAPIKey: "re_key", ResendURL: "https://api.resend.com", SMTPHost: "smtp.example.com"}, "resend"},
		{"smtp", config.Email{SMTPHost: "smtp.example.com", SMTPPort: 587}, "smtp"},
		{"none", config.Email{}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewMailer(tt.cfg, "https://www.fitlyai.com", logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.(*mailer).transport.name())
		})
	}
}

func TestMailer_Unconfigured(t *testing.T) {
	n, err := NewMailer(config.Email{}, "https://www.fitlyai.com", logger.Nop())
	require.NoError(t, err)

	err = n.SendVerificationEmail(context.Background(), "a@example.com", "https://x/api/verify-email?token=1")
	assert.ErrorIs(t, err, ErrEmailNotSent)
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

// ── Resend transport ────────────────────────────────────────────────────────

func TestResendTransport_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))

		body := decodeBody(t, r)
		assert.Equal(t, "from@example.com", body["from"])
		assert.Equal(t, []any{"to@example.com"}, body["to"])
		assert.Equal(t, "subject", body["subject"])
		assert.Equal(t, "<p>hi</p>", body["html"])

		writeJSON(t, w, http.StatusOK, map[string]string{"id": "email-1"})
	}))
	defer srv.Close()

	tr, err := newResendTransport(config.Email{ResendAPIKey: "re_key", ResendURL: srv.URL})
	require.NoError(t, err)

	err = tr.send(context.Background(), emailMessage{From: "from@example.com", To: "to@example.com", Subject: "subject", HTML: "<p>hi</p>"})
	assert.NoError(t, err)
}

func TestResendTransport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"API key is invalid"}`, ErrUnauthorized},
		{"validation", http.StatusUnprocessableEntity, `{"message":"invalid from"}`, ErrUnprocessableEntity},
		{"rate limited", http.StatusTooManyRequests, ``, ErrTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tr, err := newResendTransport(config.Email{ResendAPIKey: "re_key", ResendURL: srv.URL})
			require.NoError(t, err)

			err = tr.send(context.Background(), emailMessage{To: "to@example.com"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{})
		}))
		defer srv.Close()

		tr, err := newResendTransport(config.Email{ResendAPIKey: "re_key", ResendURL: srv.URL})
		require.NoError(t, err)
		assert.Error(t, tr.send(context.Background(), emailMessage{To: "to@example.com"}))
	})
}

// ── SMTP transport ──────────────────────────────────────────────────────────

func TestBuildSMTPMessage(t *testing.T) {
	m := buildSMTPMessage(emailMessage{From: "from@example.com", To: "to@example.com", Subject: "Hello", HTML: "<p>hi</p>"})

	assert.Equal(t, []string{"from@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"to@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))

	var sb strings.Builder
	_, err := m.WriteTo(&sb)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), "<p>hi</p>")
}

func TestSMTPTransport_CancelledContext(t *testing.T) {
	tr := newSMTPTransport(config.Email{SMTPHost: "127.0.0.1", SMTPPort: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, tr.send(ctx, emailMessage{From: "a@example.com", To: "b@example.com"}), context.Canceled)
}
