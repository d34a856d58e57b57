package billing

import (
	"context"

	"encore.dev/rlog"
)

// SyncSubscription pulls the processor's current view of a subscription and
// applies it through the same transition logic the update events use. It is
// the recovery path for dropped or long-delayed webhook deliveries.
//
//encore:api public path=/v1/subscriptions/:externalSubscriptionID/sync method=POST
func (s *Service) SyncSubscription(ctx context.Context, externalSubscriptionID string) (*SubscriptionResponse, error) {
	sub, err := s.business.SyncSubscription(ctx, externalSubscriptionID)
	if err != nil {
		rlog.Error("failed to sync subscription", "external_subscription_id", externalSubscriptionID, "error", err)
		return nil, err
	}
	return &SubscriptionResponse{Subscription: *sub}, nil
}
