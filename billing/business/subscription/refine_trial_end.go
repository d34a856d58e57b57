package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

// RefineTrialEnd is advisory: it updates the trial end date when the event
// carries a refined value and hands the reminder to the notification
// collaborator. No other subscription state changes.
func (b *business) RefineTrialEnd(ctx context.Context, externalSubscriptionID string, endsAt time.Time) error {
	sub, err := b.resolveByExternal(ctx, externalSubscriptionID, "", false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "no subscription matches the trial event"}
		}
		return err
	}

	updated, err := b.stateMachine.Transition(ctx, sub.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		if !endsAt.IsZero() && current.TrialStartDate != nil && current.TrialStartDate.Before(endsAt) {
			next.TrialEndDate = &endsAt
		}
		return next, nil
	})
	if err != nil {
		return err
	}

	if updated.TrialEndDate != nil {
		if err := b.notifier.TrialWillEnd(ctx, updated.OrganizationID, *updated.TrialEndDate); err != nil {
			rlog.Warn("trial ending notice failed", "organization_id", updated.OrganizationID, "error", err)
		}
	}
	return nil
}
