package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func TestApplyCheckout(t *testing.T) {
	trialStart := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	trialEnd := trialStart.Add(7 * 24 * time.Hour)

	testCases := []struct {
		name           string
		params         ApplyCheckoutParams
		current        model.Subscription
		expectedStatus model.SubscriptionStatus
		expectedError  string
		checkResult    func(t *testing.T, sub *model.Subscription)
	}{
		{
			name: "trial_checkout_starts_trial",
			params: ApplyCheckoutParams{
				OrganizationID:         "org_1",
				ExternalCustomerID:     "cus_1",
				ExternalSubscriptionID: "sub_1",
				TrialStart:             &trialStart,
				TrialEnd:               &trialEnd,
			},
			current:        freshSubscription("org_1"),
			expectedStatus: model.SubscriptionStatusTrialing,
			checkResult: func(t *testing.T, sub *model.Subscription) {
				assert.Equal(t, model.PlanPro, sub.Plan)
				assert.True(t, sub.TrialUsed)
				assert.Equal(t, &trialStart, sub.TrialStartDate)
				assert.Equal(t, &trialEnd, sub.TrialEndDate)
				assert.Equal(t, &trialEnd, sub.NextBillingDate)
				require.NotNil(t, sub.ExternalSubscriptionID)
				assert.Equal(t, "sub_1", *sub.ExternalSubscriptionID)
			},
		},
		{
			name: "paid_checkout_goes_straight_to_active",
			params: ApplyCheckoutParams{
				OrganizationID:         "org_1",
				ExternalCustomerID:     "cus_1",
				ExternalSubscriptionID: "sub_1",
			},
			current:        freshSubscription("org_1"),
			expectedStatus: model.SubscriptionStatusActive,
			checkResult: func(t *testing.T, sub *model.Subscription) {
				assert.Equal(t, model.PlanPro, sub.Plan)
				assert.False(t, sub.TrialUsed)
				assert.Nil(t, sub.TrialStartDate)
			},
		},
		{
			name: "replay_lands_on_same_state",
			params: ApplyCheckoutParams{
				OrganizationID:         "org_1",
				ExternalCustomerID:     "cus_1",
				ExternalSubscriptionID: "sub_1",
				TrialStart:             &trialStart,
				TrialEnd:               &trialEnd,
			},
			current: func() model.Subscription {
				sub := freshSubscription("org_1")
				sub.Plan = model.PlanPro
				sub.Status = model.SubscriptionStatusTrialing
				sub.TrialUsed = true
				sub.ExternalSubscriptionID = strPtr("sub_1")
				sub.ExternalCustomerID = strPtr("cus_1")
				sub.TrialStartDate = &trialStart
				sub.TrialEndDate = &trialEnd
				return sub
			}(),
			expectedStatus: model.SubscriptionStatusTrialing,
		},
		{
			name: "missing_subscription_id_is_permanent",
			params: ApplyCheckoutParams{
				OrganizationID:     "org_1",
				ExternalCustomerID: "cus_1",
			},
			expectedError: "checkout event carries no subscription",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, deps := newTestBusiness(ctrl)

			if tc.expectedError == "" {
				deps.repo.EXPECT().
					GetByOrganizationID(gomock.Any(), "org_1").
					Return(tc.current, nil)
				expectTransition(deps.machine, tc.current)
			}

			sub, err := b.ApplyCheckout(context.Background(), tc.params)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, sub.Status)
			if tc.checkResult != nil {
				tc.checkResult(t, sub)
			}
		})
	}
}
