package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// ApplySubscriptionStateParams mirrors the subscription object the processor
// pushes on created/updated events and returns on reconciliation pulls.
type ApplySubscriptionStateParams struct {
	ExternalSubscriptionID string
	ExternalCustomerID     string
	Status                 string // processor status string, mapped locally
	CurrentPeriodStart     *time.Time
	CurrentPeriodEnd       *time.Time
	CancelAtPeriodEnd      bool
	TrialEnd               *time.Time
	PaymentMethod          *model.PaymentMethodSummary

	// CreatedClass relaxes correlation: the customer-ID fallback applies and
	// a missing local record is retryable, because the checkout event that
	// creates it may not have landed yet.
	CreatedClass bool
}

// ApplySubscriptionState copies the processor's authoritative snapshot over
// the local one. Fields are overwritten verbatim even when they look stale:
// local staleness always resolves in the processor's favor, so two racing
// updates settle on whichever applied last.
func (b *business) ApplySubscriptionState(ctx context.Context, params ApplySubscriptionStateParams) (*model.Subscription, error) {
	sub, err := b.resolveByExternal(ctx, params.ExternalSubscriptionID, params.ExternalCustomerID, params.CreatedClass)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if params.CreatedClass {
				return nil, &errs.Error{Code: errs.Unavailable, Message: "subscription not provisioned locally yet"}
			}
			return nil, &errs.Error{Code: errs.NotFound, Message: "no subscription matches the event"}
		}
		return nil, err
	}

	updated, err := b.stateMachine.Transition(ctx, sub.OrganizationID, func(current model.Subscription) (model.Subscription, error) {
		next := current
		subscriptionID := params.ExternalSubscriptionID
		next.ExternalSubscriptionID = &subscriptionID
		if params.ExternalCustomerID != "" {
			customerID := params.ExternalCustomerID
			next.ExternalCustomerID = &customerID
		}

		status := model.SubscriptionStatusFromProcessor(params.Status)
		if status == model.SubscriptionStatusCanceled {
			// A canceled push is a deletion in disguise; detach rather than
			// leave a pro plan pointing at a dead subscription.
			return detach(current), nil
		}
		next.Status = status
		if status == model.SubscriptionStatusTrialing {
			next.TrialUsed = true
		}

		next.CurrentPeriodStart = params.CurrentPeriodStart
		next.CurrentPeriodEnd = params.CurrentPeriodEnd
		next.NextBillingDate = params.CurrentPeriodEnd
		next.CancelAtPeriodEnd = params.CancelAtPeriodEnd

		if params.TrialEnd != nil {
			start := next.TrialStartDate
			if start == nil {
				// The trial began processor-side before any local record of
				// it; anchor the start so both dates stay set together.
				switch {
				case params.CurrentPeriodStart != nil && params.CurrentPeriodStart.Before(*params.TrialEnd):
					start = params.CurrentPeriodStart
				case current.UpdatedAt.Before(*params.TrialEnd):
					started := current.UpdatedAt
					start = &started
				}
			}
			if start != nil && start.Before(*params.TrialEnd) {
				next.TrialStartDate = start
				next.TrialEndDate = params.TrialEnd
			}
		}

		if params.PaymentMethod != nil {
			next.PaymentMethod = params.PaymentMethod
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// detach is the canceled end state shared by deletion events, canceled
// pushes, and immediate trial cancellation. Trial consumption survives.
func detach(current model.Subscription) model.Subscription {
	next := current
	next.Plan = model.PlanFree
	next.ExternalSubscriptionID = nil
	next.Status = model.SubscriptionStatusCanceled
	next.CancelAtPeriodEnd = false
	next.NextBillingDate = nil
	return next
}
