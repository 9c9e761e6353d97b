package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fitcoach/internal/app"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidEmail:         http.StatusBadRequest,
	service.ErrPasswordRequired:     http.StatusBadRequest,
	service.ErrPasswordTooShort:     http.StatusBadRequest,
	service.ErrCredentialsRequired:  http.StatusBadRequest,
	service.ErrMissingToken:         http.StatusBadRequest,
	service.ErrMissingEmailClaim:    http.StatusBadRequest,
	service.ErrEmptyProfileUpdate:   http.StatusBadRequest,
	service.ErrInvalidUsername:      http.StatusBadRequest,
	service.ErrEmptyMessage:         http.StatusBadRequest,
	service.ErrMessageTooLong:       http.StatusBadRequest,
	service.ErrInvalidTier:          http.StatusBadRequest,
	service.ErrInvalidGoal:          http.StatusBadRequest,
	service.ErrInvalidMacroPlan:     http.StatusBadRequest,
	service.ErrInvalidProgressEntry: http.StatusBadRequest,
	service.ErrInvalidWebhook:       http.StatusBadRequest,

	service.ErrInvalidSessionToken:      http.StatusUnauthorized,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrUserNotFound:             http.StatusNotFound,
	service.ErrUserBlocked:              http.StatusForbidden,
	service.ErrEmailNotVerified:         http.StatusForbidden,
	service.ErrEmailAlreadyVerified:     http.StatusBadRequest,
	service.ErrInvalidVerificationToken: http.StatusBadRequest,
	service.ErrInvalidResetToken:        http.StatusBadRequest,
	service.ErrDailyLimitReached:        http.StatusTooManyRequests,

	service.ErrUserAlreadyExists: http.StatusBadRequest,
	service.ErrUsernameTaken:     http.StatusConflict,
	service.ErrIdentityMismatch:  http.StatusConflict,
	service.ErrIdentityNotLinked: http.StatusConflict,

	service.ErrUserCreationFailed:    http.StatusInternalServerError,
	service.ErrIdentityUnavailable:   http.StatusBadGateway,
	service.ErrIdentityUpdateFailed:  http.StatusInternalServerError,
	service.ErrEmailDeliveryFailed:   http.StatusInternalServerError,
	service.ErrBillingUnavailable:    http.StatusServiceUnavailable,
	service.ErrCheckoutFailed:        http.StatusBadGateway,
	service.ErrNotFound:              http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	utils.ErrEmptyBody:            http.StatusBadRequest,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidQueryParam:          http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoUserInContext:            http.StatusUnauthorized,

	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

// errorMessages holds the client-facing text for errors whose wording is
// part of the public contract.
var errorMessages = map[error]string{
	service.ErrUserAlreadyExists:        app.MsgUserAlreadyExists,
	service.ErrInvalidSessionToken:      app.MsgInvalidToken,
	service.ErrInvalidCredentials:       app.MsgInvalidCredentials,
	service.ErrUserNotFound:             app.MsgUserNotFound,
	service.ErrUserBlocked:              app.MsgAccountBlocked,
	service.ErrEmailNotVerified:         app.MsgEmailNotVerified,
	service.ErrEmailAlreadyVerified:     app.MsgEmailAlreadyVerified,
	service.ErrInvalidVerificationToken: app.MsgVerificationInvalid,
	service.ErrInvalidResetToken:        app.MsgInvalidResetToken,
	service.ErrDailyLimitReached:        app.MsgDailyLimitReached,
	service.ErrUsernameTaken:            app.MsgUsernameTaken,
	service.ErrEmailDeliveryFailed:      app.MsgEmailNotSent,
	service.ErrBillingUnavailable:       app.MsgStripeNotConfigured,
	service.ErrCheckoutFailed:           app.MsgCheckoutFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError never leaks internal error text for 5xx responses.
func messageFromError(err error, status int) string {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and writes it as {"error": "..."}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeErrorBody(w, r, err, status, models.ErrorResponse{Error: messageFromError(err, status)})
}

// writeErrorMessage is writeError for endpoints whose contract uses
// {"message": "..."} for failures.
func writeErrorMessage(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	if msg == "" {
		msg = messageFromError(err, status)
	}
	writeErrorBody(w, r, err, status, models.MessageResponse{Message: msg})
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, err error, status int, body any) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
