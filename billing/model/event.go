package model

import (
	"encoding/json"
	"time"
)

// BillingEvent is the processing record for a single processor notification,
// keyed by the processor's event ID for idempotency.
type BillingEvent struct {
	ID         int64           `json:"id"`
	ExternalID string          `json:"external_id"`
	Type       EventType       `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
	Status     EventStatus     `json:"status"`
	Attempt    int32           `json:"attempt"`
	LastError  *string         `json:"last_error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EventStatus tracks the lifecycle of a processing attempt. It is independent
// of the business status on the Subscription the event may touch.
type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusProcessing EventStatus = "processing"
	EventStatusRetrying   EventStatus = "retrying"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusFailed     EventStatus = "failed"
)

// Terminal reports whether the status can no longer change through normal
// processing. A completed event stays completed across redeliveries.
func (s EventStatus) Terminal() bool {
	return s == EventStatusCompleted || s == EventStatusFailed
}

// EventType is the processor's event kind. Unrecognized values are preserved
// verbatim so unknown events can be acknowledged without losing information.
type EventType string

const (
	EventCheckoutCompleted  EventType = "checkout.session.completed"
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
	EventTrialWillEnd        EventType = "customer.subscription.trial_will_end"
	EventPaymentSucceeded    EventType = "invoice.payment_succeeded"
	EventPaymentFailed       EventType = "invoice.payment_failed"
)

// Known reports whether the engine has a dedicated handler for this type.
func (t EventType) Known() bool {
	switch t {
	case EventCheckoutCompleted,
		EventSubscriptionCreated,
		EventSubscriptionUpdated,
		EventSubscriptionDeleted,
		EventTrialWillEnd,
		EventPaymentSucceeded,
		EventPaymentFailed:
		return true
	}
	return false
}
