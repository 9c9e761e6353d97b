package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/service"
	"github.com/MKhiriev/fitcoach/internal/utils"
	"github.com/MKhiriev/fitcoach/models"
)

type Handler struct {
	services *service.Services

	frontendURL          string
	verifiedRedirectPath string
	requestTimeout       time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:             services,
		frontendURL:          strings.TrimRight(app.FrontendURL, "/"),
		verifiedRedirectPath: app.VerifiedRedirectPath,
		requestTimeout:       server.RequestTimeout,
		logger:               logger,
	}
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
