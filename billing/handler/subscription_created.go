package handler

import (
	"context"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// SubscriptionCreated mirrors the processor's initial subscription state.
// Resolution may fall back to the customer ID, and a missing local record is
// retryable: the checkout event that creates it can arrive after this one.
type SubscriptionCreated struct {
	business subscription.Business
}

func NewSubscriptionCreated(b subscription.Business) *SubscriptionCreated {
	return &SubscriptionCreated{business: b}
}

func (h *SubscriptionCreated) Type() model.EventType { return model.EventSubscriptionCreated }

func (h *SubscriptionCreated) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Subscription()
	if err != nil {
		return malformedPayload(err)
	}
	_, err = h.business.ApplySubscriptionState(ctx, stateParams(payload, true))
	return err
}

// stateParams is shared by the created and updated handlers; only the
// correlation strictness differs.
func stateParams(payload *model.SubscriptionPayload, createdClass bool) subscription.ApplySubscriptionStateParams {
	return subscription.ApplySubscriptionStateParams{
		ExternalSubscriptionID: payload.ID,
		ExternalCustomerID:     payload.Customer,
		Status:                 payload.Status,
		CurrentPeriodStart:     model.UnixTime(payload.CurrentPeriodStart),
		CurrentPeriodEnd:       model.UnixTime(payload.CurrentPeriodEnd),
		CancelAtPeriodEnd:      payload.CancelAtPeriodEnd,
		TrialEnd:               model.UnixTime(payload.TrialEnd),
		PaymentMethod:          payload.PaymentMethod,
		CreatedClass:           createdClass,
	}
}
