package handler

import (
	"context"
	"time"

	"encore.app/billing/business/subscription"
	"encore.app/billing/model"
)

// TrialWillEnd is advisory: refine the stored trial end date if the event
// carries one and trigger the reminder notification. No other state changes.
type TrialWillEnd struct {
	business subscription.Business
}

func NewTrialWillEnd(b subscription.Business) *TrialWillEnd {
	return &TrialWillEnd{business: b}
}

func (h *TrialWillEnd) Type() model.EventType { return model.EventTrialWillEnd }

func (h *TrialWillEnd) Handle(ctx context.Context, env *model.EventEnvelope) error {
	payload, err := env.Subscription()
	if err != nil {
		return malformedPayload(err)
	}
	var endsAt time.Time
	if t := model.UnixTime(payload.TrialEnd); t != nil {
		endsAt = *t
	}
	return h.business.RefineTrialEnd(ctx, payload.ID, endsAt)
}
