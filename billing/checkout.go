package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/business/subscription"
)

type StartCheckoutRequest struct {
	WithTrial  bool   `json:"with_trial"`
	SuccessURL string `json:"success_url" validate:"required,url"`
	CancelURL  string `json:"cancel_url" validate:"required,url"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// StartCheckout creates a hosted checkout session for upgrading to the pro
// plan. The subscription itself only changes once the processor confirms the
// checkout through its event stream.
//
//encore:api public path=/v1/organizations/:organizationID/checkout method=POST
func (s *Service) StartCheckout(ctx context.Context, organizationID string, req *StartCheckoutRequest) (*CheckoutResponse, error) {
	url, err := s.business.StartCheckout(ctx, subscription.StartCheckoutParams{
		OrganizationID: organizationID,
		WithTrial:      req.WithTrial,
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
	})
	if err != nil {
		rlog.Error("failed to start checkout", "organization_id", organizationID, "error", err)
		return nil, err
	}
	return &CheckoutResponse{URL: url}, nil
}

// Validate implements validation for StartCheckoutRequest using go-playground/validator
func (r *StartCheckoutRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
