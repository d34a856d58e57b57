package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type BillingPortalRequest struct {
	ReturnURL string `json:"return_url" validate:"required,url"`
}

type BillingPortalResponse struct {
	URL string `json:"url"`
}

// BillingPortal creates a hosted billing-management session. Changes made in
// the portal come back through the event stream or a reconciliation sync.
//
//encore:api public path=/v1/organizations/:organizationID/portal method=POST
func (s *Service) BillingPortal(ctx context.Context, organizationID string, req *BillingPortalRequest) (*BillingPortalResponse, error) {
	url, err := s.business.BillingPortal(ctx, organizationID, req.ReturnURL)
	if err != nil {
		rlog.Error("failed to create billing portal session", "organization_id", organizationID, "error", err)
		return nil, err
	}
	return &BillingPortalResponse{URL: url}, nil
}

// Validate implements validation for BillingPortalRequest using go-playground/validator
func (r *BillingPortalRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
