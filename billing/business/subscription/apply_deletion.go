package subscription

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
)

// ApplyDeletion finalizes a cancellation: free plan, detached from the
// processor, canceled status, cancel-at-period-end cleared. Prior
// cancel-at-period-end value is irrelevant; the deletion event is terminal
// either way.
func (b *business) ApplyDeletion(ctx context.Context, externalSubscriptionID string) (*model.Subscription, error) {
	sub, err := b.resolveByExternal(ctx, externalSubscriptionID, "", false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no subscription matches the deletion event"}
		}
		return nil, err
	}

	updated, err := b.stateMachine.Transition(ctx, sub.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		return detach(current), nil
	})
	if err != nil {
		return nil, err
	}

	if err := b.notifier.SubscriptionCanceled(ctx, updated.OrganizationID); err != nil {
		rlog.Warn("cancellation notice failed", "organization_id", updated.OrganizationID, "error", err)
	}
	return &updated, nil
}
