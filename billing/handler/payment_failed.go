package handler

import (
	"context"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// PaymentFailed parks the subscription in past_due. The plan and processor
// identifiers stay: the processor keeps retrying the charge and either a
// payment_succeeded or a deletion event settles the outcome.
type PaymentFailed struct {
	business subscription.Business
}

func NewPaymentFailed(b subscription.Business) *PaymentFailed {
	return &PaymentFailed{business: b}
}

func (h *PaymentFailed) Type() model.EventType { return model.EventPaymentFailed }

func (h *PaymentFailed) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Invoice()
	if err != nil {
		return malformedPayload(err)
	}
	_, err = h.business.ApplyPaymentFailed(ctx, subscription.ApplyPaymentParams{
		ExternalSubscriptionID: payload.Subscription,
		ExternalCustomerID:     payload.Customer,
		NextAttempt:            model.UnixTime(payload.NextAttempt),
	})
	return err
}
