package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/subscription_business"
	"encore.app/billing/model"
)

func TestGetSubscription(t *testing.T) {
	testCases := []struct {
		name         string
		businessSub  *model.Subscription
		businessErr  error
		expectedCode errs.ErrCode
	}{
		{
			name: "happy_case",
			businessSub: &model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanPro,
				Status:         model.SubscriptionStatusActive,
			},
		},
		{
			name:         "business_error_passes_through",
			businessErr:  &errs.Error{Code: errs.Unavailable, Message: "storage unavailable"},
			expectedCode: errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := subscription_business.NewMockBusiness(ctrl)
			mockBusiness.EXPECT().
				EnsureSubscription(gomock.Any(), "org_1").
				Return(tc.businessSub, tc.businessErr)

			service := &Service{business: mockBusiness}
			resp, err := service.GetSubscription(context.Background(), "org_1")

			if tc.businessErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tc.businessSub, resp.Subscription)
		})
	}
}
