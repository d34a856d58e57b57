package model

import (
	"encoding/json"
	"time"
)

// EventEnvelope is the verified, parsed form of a processor notification.
// Data.Object stays raw until a handler decodes it into the payload type for
// its event kind; unknown kinds keep the raw bytes untouched.
type EventEnvelope struct {
	ID      string    `json:"id"`
	Type    EventType `json:"type"`
	Created int64     `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSessionPayload is the object carried by checkout.session.completed.
// The organization ID in Metadata is the correlation key back to the tenant.
type CheckoutSessionPayload struct {
	ID           string            `json:"id"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
	TrialStart   int64             `json:"trial_start"`
	TrialEnd     int64             `json:"trial_end"`
}

// OrganizationID returns the correlation key, or "" when the processor-side
// checkout was created without one.
func (p *CheckoutSessionPayload) OrganizationID() string {
	return p.Metadata["organization_id"]
}

// HasTrial reports whether the checkout started a trial window.
func (p *CheckoutSessionPayload) HasTrial() bool {
	return p.TrialStart > 0 && p.TrialEnd > p.TrialStart
}

// SubscriptionPayload is the object carried by customer.subscription.* events
// and by reconciliation pulls.
type SubscriptionPayload struct {
	ID                 string                `json:"id"`
	Customer           string                `json:"customer"`
	Status             string                `json:"status"`
	CurrentPeriodStart int64                 `json:"current_period_start"`
	CurrentPeriodEnd   int64                 `json:"current_period_end"`
	CancelAtPeriodEnd  bool                  `json:"cancel_at_period_end"`
	TrialEnd           int64                 `json:"trial_end"`
	PaymentMethod      *PaymentMethodSummary `json:"payment_method,omitempty"`
}

// InvoicePayload is the object carried by invoice.payment_* events.
type InvoicePayload struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	PaidAt       int64  `json:"paid_at"`
	NextAttempt  int64  `json:"next_payment_attempt"`
}

// CheckoutSession decodes the envelope payload as a checkout session.
func (e *EventEnvelope) CheckoutSession() (*CheckoutSessionPayload, error) {
	var p CheckoutSessionPayload
	if err := json.Unmarshal(e.Data.Object, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Subscription decodes the envelope payload as a processor subscription.
func (e *EventEnvelope) Subscription() (*SubscriptionPayload, error) {
	var p SubscriptionPayload
	if err := json.Unmarshal(e.Data.Object, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Invoice decodes the envelope payload as an invoice.
func (e *EventEnvelope) Invoice() (*InvoicePayload, error) {
	var p InvoicePayload
	if err := json.Unmarshal(e.Data.Object, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UnixTime converts a processor epoch-seconds field, returning nil for the
// zero value the processor uses for "not set".
func UnixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
