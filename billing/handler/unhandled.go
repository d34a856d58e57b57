package handler

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

// Unhandled acknowledges event types the engine has no handler for. New
// processor event kinds must never bounce deliveries, so this always
// succeeds trivially.
type Unhandled struct{}

func NewUnhandled() *Unhandled { return &Unhandled{} }

func (h *Unhandled) Type() model.EventType { return "" }

func (h *Unhandled) Handle(_ context.Context, env *model.EventEnvelope) error {
	rlog.Debug("ignoring unhandled event type", "event_id", env.ID, "event_type", env.Type)
	return nil
}
