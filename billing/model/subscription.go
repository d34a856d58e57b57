package model

import (
	"time"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// SubscriptionStatus is the business lifecycle of a tenant's subscription,
// independent of event-processing status.
type SubscriptionStatus string

const (
	SubscriptionStatusNone     SubscriptionStatus = "none"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// SubscriptionStatusFromProcessor maps the processor's status strings onto the
// local lifecycle. Statuses the processor may emit that have no local
// equivalent (incomplete, unpaid) collapse to past_due so the tenant is never
// silently treated as healthy.
func SubscriptionStatusFromProcessor(s string) SubscriptionStatus {
	switch s {
	case "trialing":
		return SubscriptionStatusTrialing
	case "active":
		return SubscriptionStatusActive
	case "past_due", "incomplete", "unpaid":
		return SubscriptionStatusPastDue
	case "canceled", "incomplete_expired":
		return SubscriptionStatusCanceled
	default:
		return SubscriptionStatusNone
	}
}

// PaymentMethodSummary is the derived card summary mirrored locally. The
// processor remains the vault; this is display data only.
type PaymentMethodSummary struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

// Subscription is the locally-owned mirror of a tenant's billing state.
// One record per organization, created implicitly on the free plan and never
// deleted, only transitioned.
type Subscription struct {
	ID                     int64                 `json:"id"`
	OrganizationID         string                `json:"organization_id"`
	ExternalCustomerID     *string               `json:"external_customer_id,omitempty"`
	ExternalSubscriptionID *string               `json:"external_subscription_id,omitempty"`
	Plan                   Plan                  `json:"plan"`
	Status                 SubscriptionStatus    `json:"status"`
	CurrentPeriodStart     *time.Time            `json:"current_period_start,omitempty"`
	CurrentPeriodEnd       *time.Time            `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd      bool                  `json:"cancel_at_period_end"`
	TrialUsed              bool                  `json:"trial_used"`
	TrialStartDate         *time.Time            `json:"trial_start_date,omitempty"`
	TrialEndDate           *time.Time            `json:"trial_end_date,omitempty"`
	LastPaymentDate        *time.Time            `json:"last_payment_date,omitempty"`
	NextBillingDate        *time.Time            `json:"next_billing_date,omitempty"`
	PaymentMethod          *PaymentMethodSummary `json:"payment_method,omitempty"`
	CreatedAt              time.Time             `json:"created_at"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

// TrialEligible reports whether the organization may still start a trial.
// TrialUsed is monotonic: once consumed, eligibility never comes back through
// normal flow.
func (s *Subscription) TrialEligible() bool {
	return !s.TrialUsed && s.Status != SubscriptionStatusTrialing && s.Plan != PlanPro
}

// Trialing reports whether the subscription is inside an unconverted trial.
func (s *Subscription) Trialing() bool {
	return s.Status == SubscriptionStatusTrialing
}
