package http

import (
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goals, err := h.services.FitnessService.ListGoals(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var goal models.Goal
	if err = decodeRequest(r, &goal); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.FitnessService.CreateGoal(r.Context(), user, goal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) activeMacroPlan(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.FitnessService.ActiveMacroPlan(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) createMacroPlan(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var plan models.MacroPlan
	if err = decodeRequest(r, &plan); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.FitnessService.CreateMacroPlan(r.Context(), user, plan)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	goalID, err := intQueryParam(r, "goalId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intQueryParam(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.FitnessService.ListProgress(r.Context(), user, int64(goalID), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) addProgress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var entry models.ProgressEntry
	if err = decodeRequest(r, &entry); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.FitnessService.AddProgress(r.Context(), user, entry)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
