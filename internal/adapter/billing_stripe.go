// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Metadata keys written on checkout sessions and read back from webhooks.
const (
	metadataUserID = "userId"
	metadataTier   = "tier"
	metadataEmail  = "email"
)

type stripeBilling struct {
	api           *client.API
	webhookSecret string
	priceIDs      map[models.SubscriptionTier]string

	logger *logger.Logger
}

// NewStripeBilling builds the Stripe implementation of [BillingProvider].
// Checkout is disabled without a secret key, webhooks without a webhook
// secret.
func NewStripeBilling(cfg config.Payments, logger *logger.Logger) BillingProvider {
	return newStripeBilling(cfg, nil, logger)
}

func newStripeBilling(cfg config.Payments, backends *stripe.Backends, logger *logger.Logger) *stripeBilling {
	b := &stripeBilling{
		webhookSecret: cfg.StripeWebhookSecret,
		priceIDs: map[models.SubscriptionTier]string{
			models.TierPremium: cfg.PremiumPriceID,
			models.TierPro:     cfg.ProPriceID,
		},
		logger: logger,
	}
	if cfg.StripeSecretKey != "" {
		b.api = client.New(cfg.StripeSecretKey, backends)
	}
	return b
}

func (b *stripeBilling) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (models.CheckoutSession, error) {
	if b.api == nil {
		return models.CheckoutSession{}, ErrBillingNotConfigured
	}
	if !req.Tier.IsPaid() {
		return models.CheckoutSession{}, fmt.Errorf("%w: %q", ErrUnsupportedTier, req.Tier)
	}

	userID := strconv.FormatInt(req.UserID, 10)
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          []*stripe.CheckoutSessionLineItemParams{b.lineItem(req.Tier)},
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
		ClientReferenceID:  stripe.String(userID),
	}
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, userID)
	params.AddMetadata(metadataTier, string(req.Tier))
	params.AddMetadata(metadataEmail, req.Email)

	session, err := b.api.CheckoutSessions.New(params)
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("%w: create checkout session: %w", ErrRequestFailed, err)
	}

	return models.CheckoutSession{SessionID: session.ID, URL: session.URL}, nil
}

// lineItem references the configured price of tier, or describes the
// monthly plan inline when no price id is configured.
func (b *stripeBilling) lineItem(tier models.SubscriptionTier) *stripe.CheckoutSessionLineItemParams {
	if priceID := b.priceIDs[tier]; priceID != "" {
		return &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}
	}

	name, description, amount := "FitlyAI Premium", "Unlimited AI messages + full dashboard access", int64(1499)
	if tier == models.TierPro {
		name, description, amount = "FitlyAI Pro", "Everything + full macro/calorie tracking", int64(1999)
	}

	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(string(stripe.CurrencyUSD)),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name:        stripe.String(name),
				Description: stripe.String(description),
			},
			UnitAmount: stripe.Int64(amount),
			Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			},
		},
		Quantity: stripe.Int64(1),
	}
}

func (b *stripeBilling) ParseWebhook(payload []byte, signature string) (models.BillingEvent, error) {
	if b.webhookSecret == "" {
		return models.BillingEvent{}, ErrBillingNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, b.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return models.BillingEvent{}, fmt.Errorf("%w: %w", ErrInvalidWebhookSignature, err)
	}

	out := models.BillingEvent{ID: event.ID, Type: models.BillingEventType(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case models.BillingCheckoutCompleted:
		var session stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &session); err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
		}
		fillFromCheckoutSession(&out, session)
	case models.BillingSubscriptionDeleted:
		var sub stripe.Subscription
		if err = json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
		}
		out.SubscriptionID = sub.ID
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
	case models.BillingInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err = json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
		}
		out.CustomerEmail = invoice.CustomerEmail
		if invoice.Customer != nil {
			out.CustomerID = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			out.SubscriptionID = invoice.Subscription.ID
		}
	}

	return out, nil
}

func fillFromCheckoutSession(out *models.BillingEvent, session stripe.CheckoutSession) {
	userID := session.Metadata[metadataUserID]
	if userID == "" {
		userID = session.ClientReferenceID
	}
	out.UserID, _ = strconv.ParseInt(userID, 10, 64)
	out.Tier = models.SubscriptionTier(session.Metadata[metadataTier])

	if session.Customer != nil {
		out.CustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		out.SubscriptionID = session.Subscription.ID
	}

	out.CustomerEmail = session.CustomerEmail
	if out.CustomerEmail == "" && session.CustomerDetails != nil {
		out.CustomerEmail = session.CustomerDetails.Email
	}
}
