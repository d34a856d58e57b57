package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/mocks/business/subscription_business"
	"encore.app/billing/model"
	wf "encore.app/billing/workflow"
)

func TestCancelSubscription(t *testing.T) {
	runAsyncSynchronously(t)

	externalID := "sub_1"
	attached := &model.Subscription{
		OrganizationID:         "org_1",
		Plan:                   model.PlanPro,
		Status:                 model.SubscriptionStatusTrialing,
		ExternalSubscriptionID: &externalID,
	}
	detached := &model.Subscription{
		OrganizationID: "org_1",
		Plan:           model.PlanFree,
		Status:         model.SubscriptionStatusCanceled,
	}

	t.Run("trial_cancel_signals_workflow_with_precancel_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusiness := subscription_business.NewMockBusiness(ctrl)
		mockTemporal := mocks.NewClient(t)

		// The business cancel detaches the subscription, so the workflow
		// signal has to target the ID captured before the cancel.
		mockBusiness.EXPECT().GetSubscription(gomock.Any(), "org_1").Return(attached, nil)
		mockBusiness.EXPECT().CancelSubscription(gomock.Any(), "org_1").Return(detached, nil)
		mockTemporal.On("SignalWorkflow",
			mock.Anything, "trial-sub_1", "", wf.TrialCanceledSignalName,
			wf.TrialCanceledSignal{Reason: "user_canceled"},
		).Return(nil)

		service := &Service{business: mockBusiness, temporal: mockTemporal}
		resp, err := service.CancelSubscription(context.Background(), "org_1")

		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatusCanceled, resp.Subscription.Status)
		mockTemporal.AssertExpectations(t)
	})

	t.Run("no_external_subscription_skips_signal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusiness := subscription_business.NewMockBusiness(ctrl)
		mockTemporal := mocks.NewClient(t)

		free := &model.Subscription{OrganizationID: "org_1", Plan: model.PlanFree}
		mockBusiness.EXPECT().GetSubscription(gomock.Any(), "org_1").Return(free, nil)
		mockBusiness.EXPECT().CancelSubscription(gomock.Any(), "org_1").Return(detached, nil)

		service := &Service{business: mockBusiness, temporal: mockTemporal}
		_, err := service.CancelSubscription(context.Background(), "org_1")

		require.NoError(t, err)
		mockTemporal.AssertNotCalled(t, "SignalWorkflow",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nothing_to_cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusiness := subscription_business.NewMockBusiness(ctrl)
		free := &model.Subscription{OrganizationID: "org_1", Plan: model.PlanFree}
		mockBusiness.EXPECT().GetSubscription(gomock.Any(), "org_1").Return(free, nil)
		mockBusiness.EXPECT().
			CancelSubscription(gomock.Any(), "org_1").
			Return(nil, &errs.Error{Code: errs.FailedPrecondition, Message: "no active subscription"})

		service := &Service{business: mockBusiness, temporal: mocks.NewClient(t)}
		_, err := service.CancelSubscription(context.Background(), "org_1")

		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})

	t.Run("signal_failure_does_not_fail_the_cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBusiness := subscription_business.NewMockBusiness(ctrl)
		mockTemporal := mocks.NewClient(t)

		mockBusiness.EXPECT().GetSubscription(gomock.Any(), "org_1").Return(attached, nil)
		mockBusiness.EXPECT().CancelSubscription(gomock.Any(), "org_1").Return(detached, nil)
		mockTemporal.On("SignalWorkflow",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(assert.AnError)

		service := &Service{business: mockBusiness, temporal: mockTemporal}
		resp, err := service.CancelSubscription(context.Background(), "org_1")

		require.NoError(t, err)
		assert.Equal(t, model.SubscriptionStatusCanceled, resp.Subscription.Status)
	})
}
