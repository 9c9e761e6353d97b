package adapter

import (
	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
)

// Adapters aggregates every outbound integration of the application.
type Adapters struct {
	IdentityStore IdentityStore
	Notifier      NotificationSender
	Coach         Coach
	Billing       BillingProvider
}

// NewAdapters builds all adapters from cfg. Only the identity store is
// mandatory; email, coach and billing degrade to disabled implementations
// when their keys are missing.
func NewAdapters(cfg *config.StructuredConfig, logger *logger.Logger) (*Adapters, error) {
	identityStore, err := NewSupabaseIdentityStore(cfg.Identity, logger)
	if err != nil {
		return nil, err
	}

	notifier, err := NewMailer(cfg.Email, cfg.App.FrontendURL, logger)
	if err != nil {
		return nil, err
	}

	return &Adapters{
		IdentityStore: identityStore,
		Notifier:      notifier,
		Coach:         NewOpenAICoach(cfg.Coach, logger),
		Billing:       NewStripeBilling(cfg.Payments, logger),
	}, nil
}
