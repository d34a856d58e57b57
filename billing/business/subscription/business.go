package subscription

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/notify"
	"encore.app/billing/processor"
	"encore.app/billing/repository/subscriptions"
)

// Business is the subscription lifecycle surface. The Apply* methods are the
// lifecycle-handler entry points; the rest back the human-facing actions and
// the trial workflow.
type Business interface {
	EnsureSubscription(ctx context.Context, organizationID string) (*model.Subscription, error)
	GetSubscription(ctx context.Context, organizationID string) (*model.Subscription, error)
	CheckTrialEligibility(ctx context.Context, organizationID string) (bool, error)

	ApplyCheckout(ctx context.Context, params ApplyCheckoutParams) (*model.Subscription, error)
	ApplySubscriptionState(ctx context.Context, params ApplySubscriptionStateParams) (*model.Subscription, error)
	ApplyPaymentSucceeded(ctx context.Context, params ApplyPaymentParams) (*model.Subscription, error)
	ApplyPaymentFailed(ctx context.Context, params ApplyPaymentParams) (*model.Subscription, error)
	ApplyDeletion(ctx context.Context, externalSubscriptionID string) (*model.Subscription, error)
	RefineTrialEnd(ctx context.Context, externalSubscriptionID string, endsAt time.Time) error

	SyncSubscription(ctx context.Context, externalSubscriptionID string) (*model.Subscription, error)
	StartCheckout(ctx context.Context, params StartCheckoutParams) (string, error)
	BillingPortal(ctx context.Context, organizationID, returnURL string) (string, error)
	CancelSubscription(ctx context.Context, organizationID string) (*model.Subscription, error)
	NotifyTrialEnding(ctx context.Context, organizationID string) error
}

type business struct {
	subRepo      subscriptions.Querier
	stateMachine domain.StateMachine
	processor    processor.Client
	notifier     notify.Notifier
}

// NewBusiness wires the subscription business layer. All collaborators are
// injected; nothing here reaches for globals.
func NewBusiness(
	subRepo subscriptions.Querier,
	stateMachine domain.StateMachine,
	processorClient processor.Client,
	notifier notify.Notifier,
) Business {
	return &business{
		subRepo:      subRepo,
		stateMachine: stateMachine,
		processor:    processorClient,
		notifier:     notifier,
	}
}

// providerUnavailable maps a processor API failure onto the generic
// try-again surface the action layer shows users.
func providerUnavailable(op string, err error) error {
	rlog.Error("payment processor call failed", "op", op, "error", err)
	return &errs.Error{Code: errs.Unavailable, Message: "billing provider unavailable, please try again"}
}
