package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

// maxWebhookBodyBytes is the body limit Stripe recommends for webhook endpoints.
const maxWebhookBodyBytes = 65536

func (h *Handler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CheckoutSessionRequest
	if err = decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.BillingService.CreateCheckoutSession(r.Context(), user, req.Price)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidWebhook, err))
		return
	}

	if err = h.services.BillingService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebhookAck{Received: true}, http.StatusOK)
}
