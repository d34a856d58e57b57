// Package processor is the boundary to the external payment processor, which
// stays authoritative for financial state. The engine only mirrors derived
// summaries of what it reports.
package processor

import (
	"context"

	"encore.app/billing/model"
)

// CheckoutParams describes a checkout session to start for a tenant. The
// organization ID rides along as subscription metadata and comes back on
// checkout.session.completed as the correlation key.
type CheckoutParams struct {
	OrganizationID string
	CustomerID     string // empty for first-time checkout
	TrialDays      int64  // 0 for no trial
	SuccessURL     string
	CancelURL      string
}

// Client is the processor access surface, mockable for tests.
type Client interface {
	// FetchSubscription pulls the authoritative subscription record,
	// normalized to the same payload shape pushed events carry.
	FetchSubscription(ctx context.Context, externalSubscriptionID string) (*model.SubscriptionPayload, error)

	// CreateCheckoutSession returns the hosted checkout URL.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (string, error)

	// CreatePortalSession returns the hosted billing-management URL.
	CreatePortalSession(ctx context.Context, externalCustomerID, returnURL string) (string, error)

	// CancelSubscription cancels remotely, immediately or at period end.
	CancelSubscription(ctx context.Context, externalSubscriptionID string, atPeriodEnd bool) error
}
