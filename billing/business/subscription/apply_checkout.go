package subscription

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// ApplyCheckoutParams carries the fields a completed checkout contributes to
// the local record. OrganizationID is the correlation key from the event
// metadata; its absence is a permanent failure handled before this point.
type ApplyCheckoutParams struct {
	OrganizationID         string
	ExternalCustomerID     string
	ExternalSubscriptionID string
	TrialStart             *time.Time
	TrialEnd               *time.Time
}

// ApplyCheckout attaches the processor identifiers and moves the tenant onto
// the pro plan, trialing when the checkout carried a trial window. Replaying
// the same checkout lands on the same snapshot.
func (b *business) ApplyCheckout(ctx context.Context, params ApplyCheckoutParams) (*model.Subscription, error) {
	if params.ExternalSubscriptionID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "checkout event carries no subscription"}
	}

	if _, err := b.EnsureSubscription(ctx, params.OrganizationID); err != nil {
		return nil, err
	}

	updated, err := b.stateMachine.Transition(ctx, params.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		customerID := params.ExternalCustomerID
		subscriptionID := params.ExternalSubscriptionID
		if customerID != "" {
			next.ExternalCustomerID = &customerID
		}
		next.ExternalSubscriptionID = &subscriptionID
		next.Plan = model.PlanPro

		if params.TrialStart != nil && params.TrialEnd != nil {
			next.Status = model.SubscriptionStatusTrialing
			next.TrialUsed = true
			next.TrialStartDate = params.TrialStart
			next.TrialEndDate = params.TrialEnd
			next.NextBillingDate = params.TrialEnd
		} else {
			next.Status = model.SubscriptionStatusActive
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
