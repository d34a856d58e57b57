package handler

import (
	"context"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// PaymentSucceeded records the payment and recovers a past-due subscription.
type PaymentSucceeded struct {
	business subscription.Business
}

func NewPaymentSucceeded(b subscription.Business) *PaymentSucceeded {
	return &PaymentSucceeded{business: b}
}

func (h *PaymentSucceeded) Type() model.EventType { return model.EventPaymentSucceeded }

func (h *PaymentSucceeded) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Invoice()
	if err != nil {
		return malformedPayload(err)
	}
	_, err = h.business.ApplyPaymentSucceeded(ctx, subscription.ApplyPaymentParams{
		ExternalSubscriptionID: payload.Subscription,
		ExternalCustomerID:     payload.Customer,
		PaidAt:                 model.UnixTime(payload.PaidAt),
	})
	return err
}
