package domain

import (
	"errors"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// validNext is the subscription lifecycle graph. Self-transitions are always
// legal so replayed events land on the same end state. Immediate cancellation
// being reachable only from a trial is enforced by the cancellation business
// logic, not here: processor-pushed state is authoritative and may finalize a
// cancellation from any paid state.
var validNext = map[model.SubscriptionStatus][]model.SubscriptionStatus{
	model.SubscriptionStatusNone: {
		model.SubscriptionStatusTrialing,
		model.SubscriptionStatusActive,
	},
	model.SubscriptionStatusTrialing: {
		model.SubscriptionStatusActive,
		model.SubscriptionStatusPastDue,
		model.SubscriptionStatusCanceled,
	},
	model.SubscriptionStatusActive: {
		model.SubscriptionStatusPastDue,
		model.SubscriptionStatusCanceled,
	},
	model.SubscriptionStatusPastDue: {
		model.SubscriptionStatusActive,
		model.SubscriptionStatusCanceled,
	},
	model.SubscriptionStatusCanceled: {
		model.SubscriptionStatusTrialing,
		model.SubscriptionStatusActive,
	},
}

// ValidateTransition checks the lifecycle graph.
func ValidateTransition(from, to model.SubscriptionStatus) error {
	if from == to {
		return nil
	}
	for _, next := range validNext[from] {
		if next == to {
			return nil
		}
	}
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: "invalid subscription transition from " + string(from) + " to " + string(to),
	}
}

// CheckInvariants validates the structural rules that must hold for any
// stored snapshot, whatever path produced it.
func CheckInvariants(sub model.Subscription) error {
	if (sub.TrialStartDate == nil) != (sub.TrialEndDate == nil) {
		return invariantErr("trial start and end dates must be set together")
	}
	if sub.TrialStartDate != nil && !sub.TrialEndDate.After(*sub.TrialStartDate) {
		return invariantErr("trial end date must be after trial start date")
	}
	if sub.Plan == model.PlanPro && sub.ExternalSubscriptionID == nil {
		return invariantErr("pro plan requires an external subscription")
	}
	if sub.Status == model.SubscriptionStatusCanceled && !sub.CancelAtPeriodEnd {
		if sub.ExternalSubscriptionID != nil || sub.Plan != model.PlanFree {
			return invariantErr("canceled subscription must be detached and on the free plan")
		}
	}
	return nil
}

func invariantErr(msg string) error {
	return &errs.Error{Code: errs.Internal, Message: "subscription invariant violated: " + msg}
}

// monotonicViolation is returned when an apply function tries to un-consume a
// trial; TrialUsed only ever moves false → true through normal flow.
var monotonicViolation = errors.New("trial_used cannot be reset")
