package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	signupFn               func(ctx context.Context, req models.SignupRequest, origin string) (models.User, error)
	registerFn             func(ctx context.Context, req models.SignupRequest, origin string) (models.User, error)
	loginFn                func(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)
	reconcileFn            func(ctx context.Context, accessToken string) (models.User, error)
	verifyEmailFn          func(ctx context.Context, token string) (models.User, error)
	resendFn               func(ctx context.Context, email, origin string) error
	sendForIdentityFn      func(ctx context.Context, identityID, email, origin string) error
	requestPasswordResetFn func(ctx context.Context, email string) error
	resetPasswordFn        func(ctx context.Context, token, newPassword string) error
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest, origin string) (models.User, error) {
	return m.signupFn(ctx, req, origin)
}

func (m *mockAuthService) Register(ctx context.Context, req models.SignupRequest, origin string) (models.User, error) {
	return m.registerFn(ctx, req, origin)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Reconcile(ctx context.Context, accessToken string) (models.User, error) {
	if m.reconcileFn == nil {
		if accessToken == testAccessToken {
			return testUser, nil
		}
		return models.User{}, service.ErrInvalidSessionToken
	}
	return m.reconcileFn(ctx, accessToken)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, token string) (models.User, error) {
	return m.verifyEmailFn(ctx, token)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, email, origin string) error {
	return m.resendFn(ctx, email, origin)
}

func (m *mockAuthService) SendVerificationForIdentity(ctx context.Context, identityID, email, origin string) error {
	return m.sendForIdentityFn(ctx, identityID, email, origin)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.resetPasswordFn(ctx, token, newPassword)
}

// ---- Mock: UserService ----

type mockUserService struct {
	updateProfileFn func(ctx context.Context, user models.User, update models.ProfileUpdate) (models.User, error)
	deleteFn        func(ctx context.Context, user models.User) error
}

func (m *mockUserService) View(user models.User) models.UserView {
	return user.View("2026-03-14", 5)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, user models.User, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, user, update)
}

func (m *mockUserService) Delete(ctx context.Context, user models.User) error {
	return m.deleteFn(ctx, user)
}

// ---- Mock: ChatService ----

type mockChatService struct {
	historyFn func(ctx context.Context, user models.User, limit int) ([]models.ChatMessage, error)
	sendFn    func(ctx context.Context, user models.User, message string) (models.ChatMessage, error)
}

func (m *mockChatService) History(ctx context.Context, user models.User, limit int) ([]models.ChatMessage, error) {
	return m.historyFn(ctx, user, limit)
}

func (m *mockChatService) Send(ctx context.Context, user models.User, message string) (models.ChatMessage, error) {
	return m.sendFn(ctx, user, message)
}

// ---- Mock: FitnessService ----

type mockFitnessService struct {
	createGoalFn      func(ctx context.Context, user models.User, goal models.Goal) (models.Goal, error)
	listGoalsFn       func(ctx context.Context, user models.User) ([]models.Goal, error)
	createMacroPlanFn func(ctx context.Context, user models.User, plan models.MacroPlan) (models.MacroPlan, error)
	activeMacroPlanFn func(ctx context.Context, user models.User) (models.MacroPlan, error)
	addProgressFn     func(ctx context.Context, user models.User, entry models.ProgressEntry) (models.ProgressEntry, error)
	listProgressFn    func(ctx context.Context, user models.User, goalID int64, limit int) ([]models.ProgressEntry, error)
}

func (m *mockFitnessService) CreateGoal(ctx context.Context, user models.User, goal models.Goal) (models.Goal, error) {
	return m.createGoalFn(ctx, user, goal)
}

func (m *mockFitnessService) ListGoals(ctx context.Context, user models.User) ([]models.Goal, error) {
	return m.listGoalsFn(ctx, user)
}

func (m *mockFitnessService) CreateMacroPlan(ctx context.Context, user models.User, plan models.MacroPlan) (models.MacroPlan, error) {
	return m.createMacroPlanFn(ctx, user, plan)
}

func (m *mockFitnessService) ActiveMacroPlan(ctx context.Context, user models.User) (models.MacroPlan, error) {
	return m.activeMacroPlanFn(ctx, user)
}

func (m *mockFitnessService) AddProgress(ctx context.Context, user models.User, entry models.ProgressEntry) (models.ProgressEntry, error) {
	return m.addProgressFn(ctx, user, entry)
}

func (m *mockFitnessService) ListProgress(ctx context.Context, user models.User, goalID int64, limit int) ([]models.ProgressEntry, error) {
	return m.listProgressFn(ctx, user, goalID, limit)
}

func (m *mockFitnessService) ApplyChatActions(context.Context, models.User, string) []string {
	return nil
}

// ---- Mock: BillingService ----

type mockBillingService struct {
	checkoutFn func(ctx context.Context, user models.User, tier models.SubscriptionTier) (models.CheckoutSession, error)
	webhookFn  func(ctx context.Context, payload []byte, signature string) error
}

func (m *mockBillingService) CreateCheckoutSession(ctx context.Context, user models.User, tier models.SubscriptionTier) (models.CheckoutSession, error) {
	return m.checkoutFn(ctx, user, tier)
}

func (m *mockBillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.webhookFn(ctx, payload, signature)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ---- Helpers ----

const testAccessToken = "good-token"

var testUser = models.User{
	ID:                 7,
	Email:              "alice@example.com",
	Username:           "alice",
	EmailVerified:      true,
	SubscriptionStatus: models.StatusInactive,
	SubscriptionTier:   models.TierFree,
}

// newTestHandler builds a Handler around svcs. Services left nil get empty
// mocks so the router can be built.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.ChatService == nil {
		svcs.ChatService = &mockChatService{}
	}
	if svcs.FitnessService == nil {
		svcs.FitnessService = &mockFitnessService{}
	}
	if svcs.BillingService == nil {
		svcs.BillingService = &mockBillingService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	return NewHandler(svcs, config.App{
		FrontendURL:          "https://app.example.com/",
		VerifiedRedirectPath: "/?verified=1",
	}, config.Server{}, logger.Nop())
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func authorized() []string {
	return []string{"Authorization", "Bearer " + testAccessToken}
}
