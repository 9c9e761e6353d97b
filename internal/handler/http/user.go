package http

import (
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/app"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.UserService.View(user), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = decodeRequest(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.UserService.View(updated), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAccountDeleted}, http.StatusOK)
}
