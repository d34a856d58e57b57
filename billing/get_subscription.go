package billing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

type SubscriptionResponse struct {
	Subscription model.Subscription `json:"subscription"`
}

// GetSubscription returns the organization's billing state, creating the
// free-plan default on first sight.
//
//encore:api public path=/v1/organizations/:organizationID/subscription method=GET
func (s *Service) GetSubscription(ctx context.Context, organizationID string) (*SubscriptionResponse, error) {
	sub, err := s.business.EnsureSubscription(ctx, organizationID)
	if err != nil {
		rlog.Error("failed to get subscription", "organization_id", organizationID, "error", err)
		return nil, err
	}
	return &SubscriptionResponse{Subscription: *sub}, nil
}
