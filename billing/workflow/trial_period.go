package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// DefaultReminderLead is how long before trial end the reminder goes out
// when the processor's own trial_will_end push has not arrived.
const DefaultReminderLead = 72 * time.Hour

// TrialPeriodParams contains parameters for starting the trial workflow.
type TrialPeriodParams struct {
	OrganizationID string        `json:"organization_id"`
	TrialEnd       time.Time     `json:"trial_end"`
	ReminderLead   time.Duration `json:"reminder_lead"`
}

// TrialPeriod tracks one trial window: it sends a reminder ahead of the end
// date and exits early when the trial converts or cancels. State changes
// stay with the event pipeline; this workflow only owns the timing.
func TrialPeriod(ctx workflow.Context, params TrialPeriodParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting trial period workflow", "organizationID", params.OrganizationID, "trialEnd", params.TrialEnd)

	lead := params.ReminderLead
	if lead <= 0 {
		lead = DefaultReminderLead
	}

	now := workflow.Now(ctx)
	remaining := params.TrialEnd.Sub(now)
	if remaining <= 0 {
		logger.Warn("Trial already over at workflow start", "organizationID", params.OrganizationID)
		return nil
	}

	reminderDelay := remaining - lead
	if reminderDelay < 0 {
		reminderDelay = 0
	}
	reminderTimer := workflow.NewTimer(ctx, reminderDelay)
	endTimer := workflow.NewTimer(ctx, remaining)

	convertedCh := workflow.GetSignalChannel(ctx, TrialConvertedSignalName)
	canceledCh := workflow.GetSignalChannel(ctx, TrialCanceledSignalName)

	var (
		done         bool
		reminderSent bool
	)
	for !done {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(convertedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TrialConvertedSignal
			c.Receive(ctx, &signal)
			logger.Info("Trial converted, ending workflow", "organizationID", params.OrganizationID)
			done = true
		})

		selector.AddReceive(canceledCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TrialCanceledSignal
			c.Receive(ctx, &signal)
			logger.Info("Trial canceled, ending workflow", "organizationID", params.OrganizationID, "reason", signal.Reason)
			done = true
		})

		// A resolved future stays ready, so the reminder timer is only part of
		// the selector until it has fired once.
		if !reminderSent {
			selector.AddFuture(reminderTimer, func(f workflow.Future) {
				reminderSent = true
				logger.Info("Sending trial reminder", "organizationID", params.OrganizationID)
				if err := notifyTrialEnding(ctx, params.OrganizationID); err != nil {
					logger.Error("Failed to send trial reminder", "organizationID", params.OrganizationID, "error", err)
				}
			})
		}

		selector.AddFuture(endTimer, func(f workflow.Future) {
			logger.Info("Trial window elapsed", "organizationID", params.OrganizationID)
			done = true
		})

		selector.Select(ctx)
	}

	logger.Info("Trial period workflow completed", "organizationID", params.OrganizationID)
	return nil
}

// notifyTrialEnding executes the reminder activity.
func notifyTrialEnding(ctx workflow.Context, organizationID string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, NotifyTrialEndingActivity, organizationID).Get(ctx, nil)
}
