package subscription

import (
	"context"
	"time"
)

// NotifyTrialEnding sends the trial reminder if the organization is still
// trialing. The trial workflow calls this; a converted or canceled trial
// makes it a no-op.
func (b *business) NotifyTrialEnding(ctx context.Context, organizationID string) error {
	sub, err := b.GetSubscription(ctx, organizationID)
	if err != nil {
		return err
	}
	if !sub.Trialing() {
		return nil
	}
	endsAt := time.Time{}
	if sub.TrialEndDate != nil {
		endsAt = *sub.TrialEndDate
	}
	return b.notifier.TrialWillEnd(ctx, organizationID, endsAt)
}
