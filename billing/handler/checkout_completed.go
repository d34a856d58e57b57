package handler

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// CheckoutCompleted attaches the processor identifiers from a finished
// checkout and starts the trial or active period.
type CheckoutCompleted struct {
	business subscription.Business
}

func NewCheckoutCompleted(b subscription.Business) *CheckoutCompleted {
	return &CheckoutCompleted{business: b}
}

func (h *CheckoutCompleted) Type() model.EventType { return model.EventCheckoutCompleted }

func (h *CheckoutCompleted) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.CheckoutSession()
	if err != nil {
		return malformedPayload(err)
	}

	organizationID := payload.OrganizationID()
	if organizationID == "" {
		// Without the correlation key there is no tenant to attach to, and
		// there never will be: fail permanently instead of burning retries.
		return &errs.Error{Code: errs.InvalidArgument, Message: "checkout event missing organization correlation key"}
	}

	params := subscription.ApplyCheckoutParams{
		OrganizationID:         organizationID,
		ExternalCustomerID:     payload.Customer,
		ExternalSubscriptionID: payload.Subscription,
	}
	if payload.HasTrial() {
		params.TrialStart = model.UnixTime(payload.TrialStart)
		params.TrialEnd = model.UnixTime(payload.TrialEnd)
	}

	_, err = h.business.ApplyCheckout(ctx, params)
	return err
}
