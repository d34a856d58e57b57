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

func TestCancelSubscription(t *testing.T) {
	t.Run("trial_cancels_immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		current := activeProSubscription("org_1")
		current.Status = model.SubscriptionStatusTrialing
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.Add(7 * 24 * time.Hour)
		current.TrialStartDate = &start
		current.TrialEndDate = &end

		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(current, nil)
		deps.processor.EXPECT().
			CancelSubscription(gomock.Any(), "sub_1", false).
			Return(nil)
		expectTransition(deps.machine, current)
		deps.notifier.EXPECT().
			SubscriptionCanceled(gomock.Any(), "org_1").
			Return(nil)

		sub, err := b.CancelSubscription(context.Background(), "org_1")

		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatusCanceled, sub.Status)
		assert.Equal(t, model.PlanFree, sub.Plan)
		assert.Nil(t, sub.ExternalSubscriptionID)
		assert.True(t, sub.TrialUsed)
	})

	t.Run("paid_subscription_cancels_at_period_end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		current := activeProSubscription("org_1")

		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(current, nil)
		deps.processor.EXPECT().
			CancelSubscription(gomock.Any(), "sub_1", true).
			Return(nil)
		expectTransition(deps.machine, current)

		sub, err := b.CancelSubscription(context.Background(), "org_1")

		require.NoError(t, err)
		// Usable until period end: plan and attachment survive the request.
		assert.Equal(t, model.SubscriptionStatusActive, sub.Status)
		assert.Equal(t, model.PlanPro, sub.Plan)
		assert.True(t, sub.CancelAtPeriodEnd)
		require.NotNil(t, sub.ExternalSubscriptionID)
	})

	t.Run("nothing_to_cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(freshSubscription("org_1"), nil)

		_, err := b.CancelSubscription(context.Background(), "org_1")

		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})

	t.Run("provider_failure_leaves_local_state_untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(activeProSubscription("org_1"), nil)
		deps.processor.EXPECT().
			CancelSubscription(gomock.Any(), "sub_1", true).
			Return(assert.AnError)

		_, err := b.CancelSubscription(context.Background(), "org_1")

		require.Error(t, err)
		assert.Equal(t, errs.Unavailable, errs.Code(err))
	})
}
