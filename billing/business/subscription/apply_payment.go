package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// ApplyPaymentParams carries the invoice fields the engine mirrors.
type ApplyPaymentParams struct {
	ExternalSubscriptionID string
	ExternalCustomerID     string
	PaidAt                 *time.Time
	NextAttempt            *time.Time
}

// ApplyPaymentSucceeded records the payment and clears a past-due state.
func (b *business) ApplyPaymentSucceeded(ctx context.Context, params ApplyPaymentParams) (*model.Subscription, error) {
	sub, err := b.resolvePaymentSubject(ctx, params)
	if err != nil {
		return nil, err
	}
	updated, err := b.stateMachine.Transition(ctx, sub.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		paidAt := params.PaidAt
		if paidAt == nil {
			now := time.Now().UTC()
			paidAt = &now
		}
		next.LastPaymentDate = paidAt
		next.Status = model.SubscriptionStatusActive
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ApplyPaymentFailed moves the tenant to past_due. Plan and processor
// identifiers stay attached: the processor decides when to give up, and its
// deletion event finalizes the cancellation.
func (b *business) ApplyPaymentFailed(ctx context.Context, params ApplyPaymentParams) (*model.Subscription, error) {
	sub, err := b.resolvePaymentSubject(ctx, params)
	if err != nil {
		return nil, err
	}
	updated, err := b.stateMachine.Transition(ctx, sub.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		next.Status = model.SubscriptionStatusPastDue
		if params.NextAttempt != nil {
			next.NextBillingDate = params.NextAttempt
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// resolvePaymentSubject treats a missing subject as retryable: an invoice
// event can race the checkout event that provisions the local record.
func (b *business) resolvePaymentSubject(ctx context.Context, params ApplyPaymentParams) (*model.Subscription, error) {
	sub, err := b.resolveByExternal(ctx, params.ExternalSubscriptionID, params.ExternalCustomerID, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.Unavailable, Message: "subscription not provisioned locally yet"}
		}
		return nil, err
	}
	return sub, nil
}
