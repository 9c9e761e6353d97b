package models

// SubscriptionStatus is the billing state of a user's subscription.
type SubscriptionStatus string

const (
	StatusInactive  SubscriptionStatus = "inactive"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// IsValid reports whether s is a known subscription status.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case StatusInactive, StatusActive, StatusPastDue, StatusCancelled:
		return true
	}
	return false
}

// SubscriptionTier is the plan a user is subscribed to.
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierPro     SubscriptionTier = "pro"
)

// IsValid reports whether t is a known tier.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPremium, TierPro:
		return true
	}
	return false
}

// IsPaid reports whether t can be bought through checkout.
func (t SubscriptionTier) IsPaid() bool {
	return t == TierPremium || t == TierPro
}

// SubscriptionChange describes a billing-driven update of a user row.
// Empty fields are left unchanged.
type SubscriptionChange struct {
	Status               SubscriptionStatus
	Tier                 SubscriptionTier
	StripeCustomerID     string
	StripeSubscriptionID string
}

// CheckoutSession is a created hosted payment page.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CheckoutRequest is the input for creating a checkout session.
type CheckoutRequest struct {
	UserID     int64
	Email      string
	Tier       SubscriptionTier
	SuccessURL string
	CancelURL  string
}

// BillingEventType enumerates the payment-provider events the backend reacts to.
type BillingEventType string

const (
	BillingCheckoutCompleted    BillingEventType = "checkout.session.completed"
	BillingSubscriptionDeleted  BillingEventType = "customer.subscription.deleted"
	BillingInvoicePaymentFailed BillingEventType = "invoice.payment_failed"
)

// BillingEvent is a verified, provider-agnostic webhook event.
type BillingEvent struct {
	ID   string
	Type BillingEventType

	// UserID and Tier come from checkout metadata; zero for other events.
	UserID int64
	Tier   SubscriptionTier

	CustomerID     string
	SubscriptionID string
	CustomerEmail  string
}
