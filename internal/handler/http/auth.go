// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/app"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

// decodeRequest decodes the JSON body of r into v. Empty bodies keep
// utils.ErrEmptyBody; everything else becomes ErrInvalidJSON.
func decodeRequest(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	if _, err := h.services.AuthService.Signup(r.Context(), req, utils.RequestOrigin(r)); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignupSuccessful}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req, utils.RequestOrigin(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgRegisterSuccessful,
		User:    models.RegisteredUser{Email: user.Email, EmailVerified: user.EmailVerified},
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		User:    h.services.UserService.View(user),
		Session: session,
	}, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeRequest(r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeErrorMessage(w, r, err, "")
		return
	}
	if req.Token == "" {
		writeErrorMessage(w, r, service.ErrMissingToken, app.MsgVerificationRequired)
		return
	}

	user, err := h.services.AuthService.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.VerifyEmailResponse{
		Message: app.MsgEmailVerified,
		User:    h.services.UserService.View(user),
	}, http.StatusOK)
}

// verifyEmailRedirect serves the link embedded in verification emails. It
// answers in plain text because the client is a browser, not the SPA.
func (h *Handler) verifyEmailRedirect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, app.MsgVerificationRequired, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.VerifyEmail(r.Context(), token); err != nil {
		if errors.Is(err, service.ErrInvalidVerificationToken) {
			log.Debug().Err(err).Msg("verification link rejected")
			http.Error(w, app.MsgVerificationInvalid+".", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error verifying email")
		http.Error(w, app.MsgVerificationFailed, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.frontendURL+h.verifiedRedirectPath, http.StatusFound)
}

func (h *Handler) supabaseVerify(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeRequest(r, &req); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
		writeErrorMessage(w, r, err, "")
		return
	}
	if req.Token == "" {
		writeErrorMessage(w, r, service.ErrMissingToken, app.MsgTokenRequired)
		return
	}

	user, err := h.services.AuthService.Reconcile(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotVerified) {
			logger.FromRequest(r).Debug().Err(err).Msg("reconciled user is not verified")
			utils.WriteJSON(w, models.ReconcileResponse{
				Verified: false,
				Message:  errorMessages[service.ErrEmailNotVerified],
			}, http.StatusForbidden)
			return
		}
		writeErrorMessage(w, r, err, "")
		return
	}

	view := h.services.UserService.View(user)
	utils.WriteJSON(w, models.ReconcileResponse{Verified: true, User: &view}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := decodeRequest(r, &req); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), req.Email, utils.RequestOrigin(r)); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgVerificationResent}, http.StatusOK)
}

func (h *Handler) sendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	var req models.SendVerificationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	err := h.services.AuthService.SendVerificationForIdentity(r.Context(), req.UserID, req.Email, utils.RequestOrigin(r))
	if err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgVerificationSent}, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := decodeRequest(r, &req); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		msg := ""
		if errors.Is(err, service.ErrEmailDeliveryFailed) {
			msg = app.MsgPasswordResetFailed
		}
		writeErrorMessage(w, r, err, msg)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordResetSent}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	if err := h.services.AuthService.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeErrorMessage(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgPasswordUpdated}, http.StatusOK)
}
