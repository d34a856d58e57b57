package subscription

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/processor"
)

// DefaultTrialDays is the trial window granted at checkout when the tenant
// is still eligible.
const DefaultTrialDays = 7

// StartCheckoutParams describes a checkout request from the action layer.
// Authorization for the organization happened before this call.
type StartCheckoutParams struct {
	OrganizationID string
	WithTrial      bool
	SuccessURL     string
	CancelURL      string
}

// StartCheckout returns the hosted checkout URL. The resulting state change
// arrives later through checkout.session.completed; nothing is written here.
func (b *business) StartCheckout(ctx context.Context, params StartCheckoutParams) (string, error) {
	sub, err := b.EnsureSubscription(ctx, params.OrganizationID)
	if err != nil {
		return "", err
	}
	if sub.Plan == model.PlanPro {
		return "", &errs.Error{Code: errs.FailedPrecondition, Message: "subscription already active"}
	}

	var trialDays int64
	if params.WithTrial {
		if !sub.TrialEligible() {
			return "", &errs.Error{Code: errs.FailedPrecondition, Message: "trial already used"}
		}
		trialDays = DefaultTrialDays
	}

	var customerID string
	if sub.ExternalCustomerID != nil {
		customerID = *sub.ExternalCustomerID
	}

	url, err := b.processor.CreateCheckoutSession(ctx, processor.CheckoutParams{
		OrganizationID: params.OrganizationID,
		CustomerID:     customerID,
		TrialDays:      trialDays,
		SuccessURL:     params.SuccessURL,
		CancelURL:      params.CancelURL,
	})
	if err != nil {
		return "", providerUnavailable("create_checkout_session", err)
	}
	return url, nil
}

// BillingPortal returns the hosted billing-management URL. Callers sync the
// subscription when the tenant returns, rather than waiting for push events.
func (b *business) BillingPortal(ctx context.Context, organizationID, returnURL string) (string, error) {
	sub, err := b.GetSubscription(ctx, organizationID)
	if err != nil {
		return "", err
	}
	if sub.ExternalCustomerID == nil {
		return "", &errs.Error{Code: errs.FailedPrecondition, Message: "no billing account for organization"}
	}
	url, err := b.processor.CreatePortalSession(ctx, *sub.ExternalCustomerID, returnURL)
	if err != nil {
		return "", providerUnavailable("create_portal_session", err)
	}
	return url, nil
}
