package service

import (
	"github.com/MKhiriev/fitcoach/internal/adapter"
	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ChatService    ChatService
	FitnessService FitnessService
	BillingService BillingService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	fitnessService := NewFitnessService(storages.FitnessRepository, validators.NewFitnessValidator(), logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, adapters.IdentityStore, adapters.Notifier, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, cfg.App, logger),
		ChatService:    NewChatService(storages.UserRepository, storages.ChatRepository, fitnessService, adapters.Coach, cfg.App, logger),
		FitnessService: fitnessService,
		BillingService: NewBillingService(storages.UserRepository, adapters.Billing, adapters.Notifier, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
