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

func TestSyncSubscription(t *testing.T) {
	t.Run("applies_fetched_state_like_an_update_event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		current := activeProSubscription("org_1")
		periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		periodEnd := periodStart.Add(30 * 24 * time.Hour)

		deps.processor.EXPECT().
			FetchSubscription(gomock.Any(), "sub_1").
			Return(&model.SubscriptionPayload{
				ID:                 "sub_1",
				Customer:           "cus_1",
				Status:             "past_due",
				CurrentPeriodStart: periodStart.Unix(),
				CurrentPeriodEnd:   periodEnd.Unix(),
			}, nil)
		deps.repo.EXPECT().
			GetByExternalSubscriptionID(gomock.Any(), "sub_1").
			Return(current, nil)
		expectTransition(deps.machine, current)

		sub, err := b.SyncSubscription(context.Background(), "sub_1")

		require.NoError(t, err)
		// Pull and push share one code path, so the drift resolves exactly
		// as a subscription_updated event would have resolved it.
		assert.Equal(t, model.SubscriptionStatusPastDue, sub.Status)
		assert.Equal(t, periodEnd.Unix(), sub.CurrentPeriodEnd.Unix())
	})

	t.Run("provider_failure_is_retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		deps.processor.EXPECT().
			FetchSubscription(gomock.Any(), "sub_1").
			Return(nil, assert.AnError)

		_, err := b.SyncSubscription(context.Background(), "sub_1")

		require.Error(t, err)
		assert.Equal(t, errs.Unavailable, errs.Code(err))
	})
}

func TestRefineTrialEnd(t *testing.T) {
	trialStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.Add(7 * 24 * time.Hour)
	refined := trialStart.Add(9 * 24 * time.Hour)

	trialing := func() model.Subscription {
		sub := activeProSubscription("org_1")
		sub.Status = model.SubscriptionStatusTrialing
		sub.TrialStartDate = &trialStart
		sub.TrialEndDate = &trialEnd
		return sub
	}

	t.Run("refines_end_date_and_notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		current := trialing()
		deps.repo.EXPECT().
			GetByExternalSubscriptionID(gomock.Any(), "sub_1").
			Return(current, nil)
		expectTransition(deps.machine, current)
		deps.notifier.EXPECT().
			TrialWillEnd(gomock.Any(), "org_1", refined).
			Return(nil)

		err := b.RefineTrialEnd(context.Background(), "sub_1", refined)

		require.NoError(t, err)
	})

	t.Run("zero_end_date_keeps_stored_value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		current := trialing()
		deps.repo.EXPECT().
			GetByExternalSubscriptionID(gomock.Any(), "sub_1").
			Return(current, nil)
		expectTransition(deps.machine, current)
		deps.notifier.EXPECT().
			TrialWillEnd(gomock.Any(), "org_1", trialEnd).
			Return(nil)

		err := b.RefineTrialEnd(context.Background(), "sub_1", time.Time{})

		require.NoError(t, err)
	})
}

func TestNotifyTrialEnding(t *testing.T) {
	t.Run("notifies_while_trialing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		trialEnd := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
		sub := activeProSubscription("org_1")
		sub.Status = model.SubscriptionStatusTrialing
		start := trialEnd.Add(-7 * 24 * time.Hour)
		sub.TrialStartDate = &start
		sub.TrialEndDate = &trialEnd

		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(sub, nil)
		deps.notifier.EXPECT().
			TrialWillEnd(gomock.Any(), "org_1", trialEnd).
			Return(nil)

		assert.NoError(t, b.NotifyTrialEnding(context.Background(), "org_1"))
	})

	t.Run("converted_trial_is_a_no_op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, deps := newTestBusiness(ctrl)
		deps.repo.EXPECT().
			GetByOrganizationID(gomock.Any(), "org_1").
			Return(activeProSubscription("org_1"), nil)

		assert.NoError(t, b.NotifyTrialEnding(context.Background(), "org_1"))
	})
}
