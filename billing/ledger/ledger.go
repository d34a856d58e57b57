// Package ledger records which external event IDs reached a terminal state,
// so redeliveries acknowledge without re-running handlers. The durable record
// is the billing_events row; a cache keyspace fronts the completed lookups.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/model"
	"encore.app/billing/repository/events"
)

var (
	// ErrAlreadyCompleted means the event reached terminal success before;
	// the delivery is acknowledged without side effects.
	ErrAlreadyCompleted = errors.New("event already completed")

	// ErrInFlight means another delivery holds the processing claim. The
	// caller acks and relies on the processor to redeliver after completion.
	ErrInFlight = errors.New("event already being processed")
)

// leaseTTL must exceed the per-event processing deadline so a live worker is
// never preempted, while a crashed one loses the claim.
const leaseTTL = 90 * time.Second

// Ledger implements the per-external-ID exclusivity guarantee: no two
// attempts for the same event ID run concurrently.
type Ledger struct {
	events events.Querier
	cache  ackCache
	now    func() time.Time
}

func New(eventsRepo events.Querier) *Ledger {
	return &Ledger{
		events: eventsRepo,
		cache:  keyspaceAckCache{},
		now:    time.Now,
	}
}

// NewWithCache is the test constructor.
func NewWithCache(eventsRepo events.Querier, cache ackCache, now func() time.Time) *Ledger {
	l := New(eventsRepo)
	if cache != nil {
		l.cache = cache
	}
	if now != nil {
		l.now = now
	}
	return l
}

// Claim takes the exclusive processing lock for an external event ID,
// creating the event record on first sight. The insert-then-claim dance is
// what makes concurrent redelivery safe: the unique index arbitrates, and a
// non-terminal row with a live lease rejects the second delivery.
func (l *Ledger) Claim(ctx context.Context, externalID string, typ model.EventType, payload []byte, receivedAt time.Time) (model.BillingEvent, error) {
	if l.cache.has(ctx, externalID) {
		return model.BillingEvent{}, ErrAlreadyCompleted
	}

	lease := l.now().Add(leaseTTL)
	ev, err := l.events.InsertProcessing(ctx, events.InsertProcessingParams{
		ExternalID: externalID,
		Type:       typ,
		Payload:    payload,
		ReceivedAt: receivedAt,
		LeaseUntil: lease,
	})
	if err == nil {
		return ev, nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return model.BillingEvent{}, &errs.Error{Code: errs.Internal, Message: "failed to record event intake"}
	}

	existing, err := l.events.GetByExternalID(ctx, externalID)
	if err != nil {
		return model.BillingEvent{}, &errs.Error{Code: errs.Internal, Message: "failed to load event record"}
	}
	if existing.Status == model.EventStatusCompleted {
		l.cache.set(ctx, externalID)
		return model.BillingEvent{}, ErrAlreadyCompleted
	}

	claimed, err := l.events.ClaimExisting(ctx, events.ClaimExistingParams{
		ExternalID: externalID,
		LeaseUntil: lease,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BillingEvent{}, ErrInFlight
		}
		return model.BillingEvent{}, &errs.Error{Code: errs.Internal, Message: "failed to claim event record"}
	}
	return claimed, nil
}

// HasCompleted reports terminal success for an external event ID.
func (l *Ledger) HasCompleted(ctx context.Context, externalID string) (bool, error) {
	if l.cache.has(ctx, externalID) {
		return true, nil
	}
	ev, err := l.events.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return ev.Status == model.EventStatusCompleted, nil
}

// MarkCompleted records terminal success. From here on every redelivery of
// the ID is a no-op acknowledgement.
func (l *Ledger) MarkCompleted(ctx context.Context, externalID string) error {
	if err := l.events.MarkCompleted(ctx, externalID); err != nil {
		return err
	}
	l.cache.set(ctx, externalID)
	return nil
}

// RecordAttempt persists a failed attempt and renews the lease for the
// upcoming backoff sleep.
func (l *Ledger) RecordAttempt(ctx context.Context, externalID string, attempt int32, lastError string) error {
	return l.events.RecordAttempt(ctx, events.RecordAttemptParams{
		ExternalID: externalID,
		Attempt:    attempt,
		LastError:  lastError,
		LeaseUntil: l.now().Add(leaseTTL),
	})
}

// MarkFailed records terminal failure for out-of-band alerting.
func (l *Ledger) MarkFailed(ctx context.Context, externalID string, attempt int32, lastError string) error {
	return l.events.MarkFailed(ctx, events.MarkFailedParams{
		ExternalID: externalID,
		Attempt:    attempt,
		LastError:  lastError,
	})
}

// Release drops the claim without a terminal status, used when the caller's
// deadline expired mid-flight. A redelivery picks the event back up.
func (l *Ledger) Release(ctx context.Context, externalID string) {
	if err := l.events.Release(ctx, externalID); err != nil {
		rlog.Error("failed to release event claim", "external_id", externalID, "error", err)
	}
}
