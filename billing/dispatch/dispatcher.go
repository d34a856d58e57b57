// Package dispatch maps verified event types onto lifecycle handlers.
package dispatch

import (
	"encore.app/billing/handler"
	"encore.app/billing/model"
)

// Registry is the closed set of handlers plus a catch-all for event types
// the engine does not know. Resolution is a pure lookup with no I/O.
type Registry struct {
	handlers map[model.EventType]handler.Handler
	fallback handler.Handler
}

// NewRegistry builds a registry from the given handlers. The fallback
// acknowledges unknown types trivially: new processor event kinds must never
// bounce deliveries.
func NewRegistry(fallback handler.Handler, handlers ...handler.Handler) *Registry {
	byType := make(map[model.EventType]handler.Handler, len(handlers))
	for _, h := range handlers {
		byType[h.Type()] = h
	}
	return &Registry{handlers: byType, fallback: fallback}
}

// Resolve returns the handler for the event type, never nil.
func (r *Registry) Resolve(t model.EventType) handler.Handler {
	if h, ok := r.handlers[t]; ok {
		return h
	}
	return r.fallback
}
