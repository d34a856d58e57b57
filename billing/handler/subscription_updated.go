package handler

import (
	"context"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// SubscriptionUpdated overwrites the local snapshot with the processor's,
// even when the embedded period looks older than what is stored: the
// processor is the source of truth and apparent rewinds are legitimate after
// manual dashboard edits.
type SubscriptionUpdated struct {
	business subscription.Business
}

func NewSubscriptionUpdated(b subscription.Business) *SubscriptionUpdated {
	return &SubscriptionUpdated{business: b}
}

func (h *SubscriptionUpdated) Type() model.EventType { return model.EventSubscriptionUpdated }

func (h *SubscriptionUpdated) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Subscription()
	if err != nil {
		return malformedPayload(err)
	}
	_, err = h.business.ApplySubscriptionState(ctx, stateParams(payload, false))
	return err
}
