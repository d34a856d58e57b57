package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/subscription_business"
)

func TestCheckTrialEligibility(t *testing.T) {
	testCases := []struct {
		name     string
		eligible bool
	}{
		{name: "eligible", eligible: true},
		{name: "trial_already_used", eligible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := subscription_business.NewMockBusiness(ctrl)
			mockBusiness.EXPECT().
				CheckTrialEligibility(gomock.Any(), "org_1").
				Return(tc.eligible, nil)

			service := &Service{business: mockBusiness}
			resp, err := service.CheckTrialEligibility(context.Background(), "org_1")

			require.NoError(t, err)
			assert.Equal(t, tc.eligible, resp.Eligible)
		})
	}
}
