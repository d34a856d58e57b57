package subscription

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

// CancelSubscription cancels the organization's subscription. A trial
// cancels immediately: nothing was paid, so there is nothing to run out. A
// paid subscription is scheduled to cancel at period end and stays usable
// until the processor's deletion event finalizes the transition.
func (b *business) CancelSubscription(ctx context.Context, organizationID string) (*model.Subscription, error) {
	sub, err := b.GetSubscription(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if sub.ExternalSubscriptionID == nil {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "no subscription to cancel"}
	}
	externalID := *sub.ExternalSubscriptionID

	if sub.Trialing() {
		if err := b.processor.CancelSubscription(ctx, externalID, false); err != nil {
			return nil, providerUnavailable("cancel_subscription", err)
		}
		updated, err := b.stateMachine.Transition(ctx, organizationID, func(current model.Subscription) (model.Subscription, error) {
			return detach(current), nil
		})
		if err != nil {
			return nil, err
		}
		if err := b.notifier.SubscriptionCanceled(ctx, organizationID); err != nil {
			rlog.Warn("cancellation notice failed", "organization_id", organizationID, "error", err)
		}
		return &updated, nil
	}

	if err := b.processor.CancelSubscription(ctx, externalID, true); err != nil {
		return nil, providerUnavailable("cancel_subscription", err)
	}
	updated, err := b.stateMachine.Transition(ctx, organizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		next.CancelAtPeriodEnd = true
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
