// Package audit is the fire-and-forget sink for event-processing outcomes.
// Failures here must never fail a billing transition.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

// Record is one processing outcome.
type Record struct {
	ID        string
	EventID   string
	EventType model.EventType
	Status    model.EventStatus
	Metadata  map[string]string
	At        time.Time
}

// Sink receives processing outcomes. Implementations must be safe to call
// from many goroutines.
type Sink interface {
	Record(ctx context.Context, rec Record) error
}

// NewRecord stamps an outcome with an ID and timestamp.
func NewRecord(eventID string, eventType model.EventType, status model.EventStatus, metadata map[string]string) Record {
	return Record{
		ID:        uuid.NewString(),
		EventID:   eventID,
		EventType: eventType,
		Status:    status,
		Metadata:  metadata,
		At:        time.Now().UTC(),
	}
}

// LogSink writes audit records to the structured log. The durable audit
// store lives outside this engine; this default keeps the trail visible in
// environments without one.
type LogSink struct{}

func NewLogSink() LogSink { return LogSink{} }

func (LogSink) Record(_ context.Context, rec Record) error {
	rlog.Info("billing event audit",
		"audit_id", rec.ID,
		"event_id", rec.EventID,
		"event_type", rec.EventType,
		"status", rec.Status,
		"metadata", rec.Metadata,
	)
	return nil
}
