package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/subscription"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Subscriptions subscription.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(subscriptions subscription.Business) {
	activityDeps = &ActivityDependencies{
		Subscriptions: subscriptions,
	}
}

// NotifyTrialEndingActivity sends the trial reminder through the business
// layer, which skips it when the trial already converted or canceled.
func NotifyTrialEndingActivity(ctx context.Context, organizationID string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing trial reminder activity", "organizationID", organizationID)

	if activityDeps == nil || activityDeps.Subscriptions == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.Subscriptions.NotifyTrialEnding(ctx, organizationID); err != nil {
		logger.Error("Failed to send trial reminder", "organizationID", organizationID, "error", err)
		return err
	}

	logger.Info("Trial reminder handled", "organizationID", organizationID)
	return nil
}
