package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/billing/model"
)

type stubHandler struct {
	eventType model.EventType
}

func (h stubHandler) Type() model.EventType { return h.eventType }

func (h stubHandler) Handle(context.Context, *model.EventEnvelope) error { return nil }

func TestResolve(t *testing.T) {
	fallback := stubHandler{eventType: ""}
	updated := stubHandler{eventType: model.EventSubscriptionUpdated}
	paymentFailed := stubHandler{eventType: model.EventPaymentFailed}

	registry := NewRegistry(fallback, updated, paymentFailed)

	testCases := []struct {
		name      string
		eventType model.EventType
		expected  stubHandler
	}{
		{
			name:      "registered_type",
			eventType: model.EventSubscriptionUpdated,
			expected:  updated,
		},
		{
			name:      "another_registered_type",
			eventType: model.EventPaymentFailed,
			expected:  paymentFailed,
		},
		{
			name:      "unknown_type_gets_fallback",
			eventType: model.EventType("plan.updated"),
			expected:  fallback,
		},
		{
			name:      "known_but_unregistered_type_gets_fallback",
			eventType: model.EventCheckoutCompleted,
			expected:  fallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := registry.Resolve(tc.eventType)
			assert.NotNil(t, h)
			assert.Equal(t, tc.expected, h)
		})
	}
}
