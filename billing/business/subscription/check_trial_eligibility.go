package subscription

import (
	"context"
)

// CheckTrialEligibility reports whether the organization may still start a
// trial. The record is created on first touch so a brand-new tenant is
// eligible by construction.
func (b *business) CheckTrialEligibility(ctx context.Context, organizationID string) (bool, error) {
	sub, err := b.EnsureSubscription(ctx, organizationID)
	if err != nil {
		return false, err
	}
	return sub.TrialEligible(), nil
}
