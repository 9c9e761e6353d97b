package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

func (h *Handler) chatHistory(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.services.ChatService.History(r.Context(), user, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendChatMessage(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChatRequest
	if err = decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.services.ChatService.Send(r.Context(), user, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrDailyLimitReached) {
			utils.WriteJSON(w, models.ChatLimitResponse{
				Message:      errorMessages[service.ErrDailyLimitReached],
				LimitReached: true,
			}, http.StatusTooManyRequests)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Message: reply}, http.StatusOK)
}

// intQueryParam parses an optional non-negative integer query parameter.
// An absent parameter yields 0.
func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidQueryParam, name)
	}
	return v, nil
}
