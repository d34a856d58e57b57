package billing

import (
	"context"

	"encore.dev/rlog"
)

type TrialEligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

// CheckTrialEligibility reports whether the organization can still start a
// trial. Eligibility is consumed exactly once, when a trial actually begins.
//
//encore:api public path=/v1/organizations/:organizationID/trial-eligibility method=GET
func (s *Service) CheckTrialEligibility(ctx context.Context, organizationID string) (*TrialEligibilityResponse, error) {
	eligible, err := s.business.CheckTrialEligibility(ctx, organizationID)
	if err != nil {
		rlog.Error("failed to check trial eligibility", "organization_id", organizationID, "error", err)
		return nil, err
	}
	return &TrialEligibilityResponse{Eligible: eligible}, nil
}
