package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fitcoach/internal/adapter"
	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/models"
)

type billingService struct {
	users    store.UserRepository
	billing  adapter.BillingProvider
	notifier adapter.NotificationSender

	successURL string
	cancelURL  string

	logger *logger.Logger
}

func NewBillingService(
	users store.UserRepository,
	billing adapter.BillingProvider,
	notifier adapter.NotificationSender,
	cfg config.App,
	logger *logger.Logger,
) BillingService {
	return &billingService{
		users:      users,
		billing:    billing,
		notifier:   notifier,
		successURL: cfg.FrontendURL + "/subscription-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  cfg.FrontendURL + "/",
		logger:     logger,
	}
}

func (s *billingService) CreateCheckoutSession(ctx context.Context, user models.User, tier models.SubscriptionTier) (models.CheckoutSession, error) {
	if !tier.IsPaid() {
		return models.CheckoutSession{}, ErrInvalidTier
	}

	session, err := s.billing.CreateCheckoutSession(ctx, models.CheckoutRequest{
		UserID:     user.ID,
		Email:      user.Email,
		Tier:       tier,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrBillingNotConfigured) {
			return models.CheckoutSession{}, ErrBillingUnavailable
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "billingService.CreateCheckoutSession").
			Int64("user_id", user.ID).
			Str("tier", string(tier)).
			Msg("error creating checkout session")
		return models.CheckoutSession{}, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	return session, nil
}

// HandleWebhook applies a verified billing event to the subscriber's row.
// Events that reference no known user are acknowledged and logged; only
// storage failures are returned so the provider retries them.
func (s *billingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	log := logger.FromContext(ctx)

	event, err := s.billing.ParseWebhook(payload, signature)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrBillingNotConfigured):
			return ErrBillingUnavailable
		case errors.Is(err, adapter.ErrInvalidWebhookSignature), errors.Is(err, adapter.ErrInvalidWebhookPayload):
			log.Warn().Err(err).Msg("billing webhook rejected")
			return fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
		}
		return err
	}

	log = &logger.Logger{Logger: log.With().Str("event_id", event.ID).Str("event_type", string(event.Type)).Logger()}

	switch event.Type {
	case models.BillingCheckoutCompleted:
		return s.activate(ctx, log, event)
	case models.BillingSubscriptionDeleted:
		return s.changeByCustomer(ctx, log, event.CustomerID, models.SubscriptionChange{
			Status: models.StatusCancelled,
			Tier:   models.TierFree,
		})
	case models.BillingInvoicePaymentFailed:
		return s.changeByCustomer(ctx, log, event.CustomerID, models.SubscriptionChange{
			Status: models.StatusPastDue,
		})
	default:
		log.Debug().Msg("billing event ignored")
		return nil
	}
}

func (s *billingService) activate(ctx context.Context, log *logger.Logger, event models.BillingEvent) error {
	if event.UserID == 0 || !event.Tier.IsPaid() {
		log.Warn().Int64("user_id", event.UserID).Str("tier", string(event.Tier)).Msg("checkout without user or tier metadata")
		return nil
	}

	user, err := s.users.UpdateSubscription(ctx, event.UserID, models.SubscriptionChange{
		Status:               models.StatusActive,
		Tier:                 event.Tier,
		StripeCustomerID:     event.CustomerID,
		StripeSubscriptionID: event.SubscriptionID,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Int64("user_id", event.UserID).Msg("checkout for unknown user")
			return nil
		}
		log.Err(err).Str("func", "billingService.activate").Int64("user_id", event.UserID).Msg("error activating subscription")
		return err
	}

	log.Info().Int64("user_id", user.ID).Str("tier", string(event.Tier)).Msg("subscription activated")

	if err := s.notifier.SendSubscriptionConfirmation(ctx, user.Email, user.FirstName, event.Tier); err != nil {
		log.Err(err).Int64("user_id", user.ID).Str("email", user.Email).Msg("subscription confirmation was not sent")
	}

	return nil
}

func (s *billingService) changeByCustomer(ctx context.Context, log *logger.Logger, customerID string, change models.SubscriptionChange) error {
	if customerID == "" {
		log.Warn().Msg("billing event without customer")
		return nil
	}

	user, err := s.users.FindByStripeCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("customer_id", customerID).Msg("billing event for unknown customer")
			return nil
		}
		return err
	}

	if _, err := s.users.UpdateSubscription(ctx, user.ID, change); err != nil {
		log.Err(err).Str("func", "billingService.changeByCustomer").Int64("user_id", user.ID).Msg("error updating subscription")
		return err
	}

	log.Info().Int64("user_id", user.ID).Str("status", string(change.Status)).Msg("subscription updated")
	return nil
}
