package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/subscription_business"
)

func TestBillingPortal(t *testing.T) {
	testCases := []struct {
		name         string
		businessURL  string
		businessErr  error
		expectedCode errs.ErrCode
	}{
		{
			name:        "happy_case",
			businessURL: "https://portal.example.com/ps_1",
		},
		{
			name:         "no_billing_account",
			businessErr:  &errs.Error{Code: errs.FailedPrecondition, Message: "no billing account"},
			expectedCode: errs.FailedPrecondition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := subscription_business.NewMockBusiness(ctrl)
			mockBusiness.EXPECT().
				BillingPortal(gomock.Any(), "org_1", "https://app.example.com/billing").
				Return(tc.businessURL, tc.businessErr)

			service := &Service{business: mockBusiness}
			resp, err := service.BillingPortal(context.Background(), "org_1", &BillingPortalRequest{
				ReturnURL: "https://app.example.com/billing",
			})

			if tc.businessErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.businessURL, resp.URL)
		})
	}
}

func TestBillingPortalRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		req           BillingPortalRequest
		expectedError string
	}{
		{
			name: "valid_request",
			req:  BillingPortalRequest{ReturnURL: "https://app.example.com/billing"},
		},
		{
			name:          "missing_return_url",
			req:           BillingPortalRequest{},
			expectedError: "required",
		},
		{
			name:          "return_url_not_a_url",
			req:           BillingPortalRequest{ReturnURL: "billing page"},
			expectedError: "url",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
