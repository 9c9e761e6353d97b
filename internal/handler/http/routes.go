package http

import (
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/app"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// the webhook signature covers the raw body, so it skips compression
	router.Post("/api/stripe-webhook", h.stripeWebhook)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/signup", h.signup)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/verify-email", h.verifyEmail)
		r.Get("/api/verify-email", h.verifyEmailRedirect)
		r.Post("/api/auth/supabase-verify", h.supabaseVerify)
		r.Post("/api/resend-verification", h.resendVerification)
		r.Post("/api/send-verification-email", h.sendVerificationEmail)
		r.Post("/api/request-password-reset", h.requestPasswordReset)
		r.Post("/api/reset-password", h.resetPassword)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/user/me", h.me)
			r.Patch("/api/user/profile", h.updateProfile)
			r.Delete("/api/user", h.deleteUser)

			r.Get("/api/chat/messages", h.chatHistory)
			r.Post("/api/chat/message", h.sendChatMessage)

			r.Get("/api/goals", h.listGoals)
			r.Post("/api/goals", h.createGoal)
			r.Get("/api/macros", h.activeMacroPlan)
			r.Post("/api/macros", h.createMacroPlan)
			r.Get("/api/progress", h.listProgress)
			r.Post("/api/progress", h.addProgress)

			r.Post("/api/create-checkout-session", h.createCheckoutSession)
		})
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgRouteNotFound}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
}
