package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"encore.app/billing/model"
)

func TestValidateTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    model.SubscriptionStatus
		to      model.SubscriptionStatus
		allowed bool
	}{
		{name: "none_to_trialing", from: model.SubscriptionStatusNone, to: model.SubscriptionStatusTrialing, allowed: true},
		{name: "none_to_active", from: model.SubscriptionStatusNone, to: model.SubscriptionStatusActive, allowed: true},
		{name: "none_to_past_due", from: model.SubscriptionStatusNone, to: model.SubscriptionStatusPastDue, allowed: false},
		{name: "none_to_canceled", from: model.SubscriptionStatusNone, to: model.SubscriptionStatusCanceled, allowed: false},
		{name: "trialing_to_active", from: model.SubscriptionStatusTrialing, to: model.SubscriptionStatusActive, allowed: true},
		{name: "trialing_to_past_due", from: model.SubscriptionStatusTrialing, to: model.SubscriptionStatusPastDue, allowed: true},
		{name: "trialing_to_canceled", from: model.SubscriptionStatusTrialing, to: model.SubscriptionStatusCanceled, allowed: true},
		{name: "active_to_past_due", from: model.SubscriptionStatusActive, to: model.SubscriptionStatusPastDue, allowed: true},
		{name: "active_to_canceled", from: model.SubscriptionStatusActive, to: model.SubscriptionStatusCanceled, allowed: true},
		{name: "active_to_trialing", from: model.SubscriptionStatusActive, to: model.SubscriptionStatusTrialing, allowed: false},
		{name: "past_due_to_active", from: model.SubscriptionStatusPastDue, to: model.SubscriptionStatusActive, allowed: true},
		{name: "past_due_to_canceled", from: model.SubscriptionStatusPastDue, to: model.SubscriptionStatusCanceled, allowed: true},
		{name: "past_due_to_trialing", from: model.SubscriptionStatusPastDue, to: model.SubscriptionStatusTrialing, allowed: false},
		{name: "canceled_to_active", from: model.SubscriptionStatusCanceled, to: model.SubscriptionStatusActive, allowed: true},
		{name: "canceled_to_trialing", from: model.SubscriptionStatusCanceled, to: model.SubscriptionStatusTrialing, allowed: true},
		{name: "canceled_to_past_due", from: model.SubscriptionStatusCanceled, to: model.SubscriptionStatusPastDue, allowed: false},
		{name: "self_transition_replay", from: model.SubscriptionStatusActive, to: model.SubscriptionStatusActive, allowed: true},
		{name: "canceled_self_transition", from: model.SubscriptionStatusCanceled, to: model.SubscriptionStatusCanceled, allowed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid subscription transition")
			}
		})
	}
}

func TestCheckInvariants(t *testing.T) {
	extSub := "sub_123"
	trialStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := trialStart.Add(7 * 24 * time.Hour)

	testCases := []struct {
		name          string
		sub           model.Subscription
		expectedError string
	}{
		{
			name: "free_none_default",
			sub: model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanFree,
				Status:         model.SubscriptionStatusNone,
			},
		},
		{
			name: "trialing_with_consistent_dates",
			sub: model.Subscription{
				OrganizationID:         "org_1",
				Plan:                   model.PlanPro,
				Status:                 model.SubscriptionStatusTrialing,
				ExternalSubscriptionID: &extSub,
				TrialUsed:              true,
				TrialStartDate:         &trialStart,
				TrialEndDate:           &trialEnd,
			},
		},
		{
			name: "trial_start_without_end",
			sub: model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanFree,
				Status:         model.SubscriptionStatusNone,
				TrialStartDate: &trialStart,
			},
			expectedError: "trial start and end dates must be set together",
		},
		{
			name: "trial_end_not_after_start",
			sub: model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanFree,
				Status:         model.SubscriptionStatusNone,
				TrialStartDate: &trialEnd,
				TrialEndDate:   &trialStart,
			},
			expectedError: "trial end date must be after trial start date",
		},
		{
			name: "pro_without_external_subscription",
			sub: model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanPro,
				Status:         model.SubscriptionStatusActive,
			},
			expectedError: "pro plan requires an external subscription",
		},
		{
			name: "canceled_still_attached",
			sub: model.Subscription{
				OrganizationID:         "org_1",
				Plan:                   model.PlanFree,
				Status:                 model.SubscriptionStatusCanceled,
				ExternalSubscriptionID: &extSub,
			},
			expectedError: "canceled subscription must be detached",
		},
		{
			name: "canceled_still_pro",
			sub: model.Subscription{
				OrganizationID: "org_1",
				Plan:           model.PlanPro,
				Status:         model.SubscriptionStatusCanceled,
			},
			expectedError: "pro plan requires an external subscription",
		},
		{
			name: "cancel_at_period_end_keeps_attachment",
			sub: model.Subscription{
				OrganizationID:         "org_1",
				Plan:                   model.PlanPro,
				Status:                 model.SubscriptionStatusCanceled,
				ExternalSubscriptionID: &extSub,
				CancelAtPeriodEnd:      true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckInvariants(tc.sub)
			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
