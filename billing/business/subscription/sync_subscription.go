package subscription

import (
	"context"

	"encore.app/billing/model"
)

// SyncSubscription is the reconciliation pull: fetch the authoritative
// record and run it through the exact transition logic pushed
// subscription_updated events use, so pull and push can never diverge.
func (b *business) SyncSubscription(ctx context.Context, externalSubscriptionID string) (*model.Subscription, error) {
	payload, err := b.processor.FetchSubscription(ctx, externalSubscriptionID)
	if err != nil {
		return nil, providerUnavailable("fetch_subscription", err)
	}

	return b.ApplySubscriptionState(ctx, ApplySubscriptionStateParams{
		ExternalSubscriptionID: payload.ID,
		ExternalCustomerID:     payload.Customer,
		Status:                 payload.Status,
		CurrentPeriodStart:     model.UnixTime(payload.CurrentPeriodStart),
		CurrentPeriodEnd:       model.UnixTime(payload.CurrentPeriodEnd),
		CancelAtPeriodEnd:      payload.CancelAtPeriodEnd,
		TrialEnd:               model.UnixTime(payload.TrialEnd),
		PaymentMethod:          payload.PaymentMethod,
	})
}
