package subscription

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

func TestEnsureSubscription(t *testing.T) {
	testCases := []struct {
		name      string
		setupMock func(deps *testDeps)
		checkSub  func(t *testing.T, sub *model.Subscription)
	}{
		{
			name: "existing_record_returned",
			setupMock: func(deps *testDeps) {
				deps.repo.EXPECT().
					GetByOrganizationID(gomock.Any(), "org_1").
					Return(activeProSubscription("org_1"), nil)
			},
			checkSub: func(t *testing.T, sub *model.Subscription) {
				assert.Equal(t, model.PlanPro, sub.Plan)
			},
		},
		{
			name: "first_touch_creates_free_none",
			setupMock: func(deps *testDeps) {
				deps.repo.EXPECT().
					GetByOrganizationID(gomock.Any(), "org_1").
					Return(model.Subscription{}, pgx.ErrNoRows)
				deps.repo.EXPECT().
					Create(gomock.Any(), "org_1").
					Return(freshSubscription("org_1"), nil)
			},
			checkSub: func(t *testing.T, sub *model.Subscription) {
				assert.Equal(t, model.PlanFree, sub.Plan)
				assert.Equal(t, model.SubscriptionStatusNone, sub.Status)
				assert.False(t, sub.TrialUsed)
			},
		},
		{
			name: "concurrent_first_touch_falls_back_to_get",
			setupMock: func(deps *testDeps) {
				deps.repo.EXPECT().
					GetByOrganizationID(gomock.Any(), "org_1").
					Return(model.Subscription{}, pgx.ErrNoRows)
				deps.repo.EXPECT().
					Create(gomock.Any(), "org_1").
					Return(model.Subscription{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})
				deps.repo.EXPECT().
					GetByOrganizationID(gomock.Any(), "org_1").
					Return(freshSubscription("org_1"), nil)
			},
			checkSub: func(t *testing.T, sub *model.Subscription) {
				assert.Equal(t, "org_1", sub.OrganizationID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, deps := newTestBusiness(ctrl)
			tc.setupMock(deps)

			sub, err := b.EnsureSubscription(context.Background(), "org_1")

			require.NoError(t, err)
			tc.checkSub(t, sub)
		})
	}
}

func TestGetSubscriptionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, deps := newTestBusiness(ctrl)
	deps.repo.EXPECT().
		GetByOrganizationID(gomock.Any(), "org_1").
		Return(model.Subscription{}, pgx.ErrNoRows)

	_, err := b.GetSubscription(context.Background(), "org_1")

	require.Error(t, err)
	assert.Equal(t, errs.NotFound, errs.Code(err))
}

func TestCheckTrialEligibility(t *testing.T) {
	testCases := []struct {
		name     string
		sub      model.Subscription
		expected bool
	}{
		{
			name:     "new_tenant_is_eligible",
			sub:      freshSubscription("org_1"),
			expected: true,
		},
		{
			name: "consumed_trial_is_not_eligible",
			sub: func() model.Subscription {
				sub := freshSubscription("org_1")
				sub.TrialUsed = true
				return sub
			}(),
			expected: false,
		},
		{
			name:     "active_pro_is_not_eligible",
			sub:      activeProSubscription("org_1"),
			expected: false,
		},
		{
			name: "canceled_after_trial_is_not_eligible",
			sub: func() model.Subscription {
				sub := freshSubscription("org_1")
				sub.Status = model.SubscriptionStatusCanceled
				sub.TrialUsed = true
				return sub
			}(),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, deps := newTestBusiness(ctrl)
			deps.repo.EXPECT().
				GetByOrganizationID(gomock.Any(), "org_1").
				Return(tc.sub, nil)

			eligible, err := b.CheckTrialEligibility(context.Background(), "org_1")

			require.NoError(t, err)
			assert.Equal(t, tc.expected, eligible)
		})
	}
}
