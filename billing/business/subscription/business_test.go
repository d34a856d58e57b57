package subscription

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"encore.app/billing/domain"
	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/notify/notifier"
	"encore.app/billing/mocks/processor/processor_client"
	"encore.app/billing/mocks/repository/subscription_repo"
	"encore.app/billing/model"
)

// testDeps bundles the mocked collaborators behind a business instance.
type testDeps struct {
	repo      *subscription_repo.MockQuerier
	machine   *state_machine.MockStateMachine
	processor *processor_client.MockClient
	notifier  *notifier.MockNotifier
}

func newTestBusiness(ctrl *gomock.Controller) (*business, *testDeps) {
	deps := &testDeps{
		repo:      subscription_repo.NewMockQuerier(ctrl),
		machine:   state_machine.NewMockStateMachine(ctrl),
		processor: processor_client.NewMockClient(ctrl),
		notifier:  notifier.NewMockNotifier(ctrl),
	}
	b := &business{
		subRepo:      deps.repo,
		stateMachine: deps.machine,
		processor:    deps.processor,
		notifier:     deps.notifier,
	}
	return b, deps
}

// expectTransition wires the state machine mock to behave like the real one:
// run the apply function against the given snapshot, then enforce the
// lifecycle graph and the snapshot invariants on the result.
func expectTransition(machine *state_machine.MockStateMachine, current model.Subscription) {
	machine.EXPECT().
		Transition(gomock.Any(), current.OrganizationID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, apply domain.TransitionFunc) (model.Subscription, error) {
			next, err := apply(current)
			if err != nil {
				return model.Subscription{}, err
			}
			if err := domain.ValidateTransition(current.Status, next.Status); err != nil {
				return model.Subscription{}, err
			}
			if err := domain.CheckInvariants(next); err != nil {
				return model.Subscription{}, err
			}
			return next, nil
		})
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func freshSubscription(organizationID string) model.Subscription {
	return model.Subscription{
		ID:             1,
		OrganizationID: organizationID,
		Plan:           model.PlanFree,
		Status:         model.SubscriptionStatusNone,
		UpdatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func activeProSubscription(organizationID string) model.Subscription {
	sub := freshSubscription(organizationID)
	sub.Plan = model.PlanPro
	sub.Status = model.SubscriptionStatusActive
	sub.ExternalSubscriptionID = strPtr("sub_1")
	sub.ExternalCustomerID = strPtr("cus_1")
	sub.TrialUsed = true
	return sub
}
