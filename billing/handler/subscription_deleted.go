package handler

import (
	"context"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// SubscriptionDeleted finalizes a cancellation whatever the prior
// cancel-at-period-end value was.
type SubscriptionDeleted struct {
	business subscription.Business
}

func NewSubscriptionDeleted(b subscription.Business) *SubscriptionDeleted {
	return &SubscriptionDeleted{business: b}
}

func (h *SubscriptionDeleted) Type() model.EventType { return model.EventSubscriptionDeleted }

func (h *SubscriptionDeleted) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Subscription()
	if err != nil {
		return malformedPayload(err)
	}
	_, err = h.business.ApplyDeletion(ctx, payload.ID)
	return err
}
