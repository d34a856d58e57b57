package billing

import (
	"context"

	"encore.dev/rlog"

	wf "encore.app/billing/workflow"
)

// CancelSubscription cancels the organization's subscription: immediately for
// a trial, at period end otherwise. The trial workflow is signaled with the
// pre-cancel subscription ID, since a trial cancel detaches it from the row.
//
//encore:api public path=/v1/organizations/:organizationID/subscription/cancel method=POST
func (s *Service) CancelSubscription(ctx context.Context, organizationID string) (*SubscriptionResponse, error) {
	current, err := s.business.GetSubscription(ctx, organizationID)
	if err != nil {
		rlog.Error("failed to load subscription for cancel", "organization_id", organizationID, "error", err)
		return nil, err
	}
	var externalID string
	if current.ExternalSubscriptionID != nil {
		externalID = *current.ExternalSubscriptionID
	}

	updated, err := s.business.CancelSubscription(ctx, organizationID)
	if err != nil {
		rlog.Error("failed to cancel subscription", "organization_id", organizationID, "error", err)
		return nil, err
	}

	if externalID != "" {
		s.signalTrialWorkflow(externalID, wf.TrialCanceledSignalName,
			wf.TrialCanceledSignal{Reason: "user_canceled"})
	}

	return &SubscriptionResponse{Subscription: *updated}, nil
}
