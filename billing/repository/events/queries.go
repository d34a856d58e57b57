package events

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/billing/model"
)

const eventColumns = `
	id, external_id, event_type, payload, received_at, status, attempt,
	last_error, lease_expires_at, created_at, updated_at`

type InsertProcessingParams struct {
	ExternalID string
	Type       model.EventType
	Payload    []byte
	ReceivedAt time.Time
	LeaseUntil time.Time
}

// InsertProcessing creates the event record already claimed for processing.
// A unique violation on external_id means the event was seen before; the
// caller falls through to ClaimExisting.
func (q *Queries) InsertProcessing(ctx context.Context, arg InsertProcessingParams) (model.BillingEvent, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO billing_events (
			external_id, event_type, payload, received_at, status, attempt, lease_expires_at
		) VALUES ($1, $2, $3, $4, 'processing', 0, $5)
		RETURNING`+eventColumns,
		arg.ExternalID, string(arg.Type), arg.Payload,
		pgtype.Timestamptz{Time: arg.ReceivedAt, Valid: true},
		pgtype.Timestamptz{Time: arg.LeaseUntil, Valid: true},
	)
	return scanEvent(row)
}

type ClaimExistingParams struct {
	ExternalID string
	LeaseUntil time.Time
}

// ClaimExisting takes over an event that is not terminal-completed and not
// held by a live lease. pgx.ErrNoRows means someone else is processing it.
func (q *Queries) ClaimExisting(ctx context.Context, arg ClaimExistingParams) (model.BillingEvent, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE billing_events
		SET status = 'processing', lease_expires_at = $2, updated_at = now()
		WHERE external_id = $1
		  AND (status IN ('pending', 'failed')
		       OR (status IN ('processing', 'retrying')
		           AND (lease_expires_at IS NULL OR lease_expires_at < now())))
		RETURNING`+eventColumns,
		arg.ExternalID,
		pgtype.Timestamptz{Time: arg.LeaseUntil, Valid: true},
	)
	return scanEvent(row)
}

func (q *Queries) GetByExternalID(ctx context.Context, externalID string) (model.BillingEvent, error) {
	row := q.db.QueryRow(ctx, `
		SELECT`+eventColumns+`
		FROM billing_events
		WHERE external_id = $1`,
		externalID,
	)
	return scanEvent(row)
}

type RecordAttemptParams struct {
	ExternalID string
	Attempt    int32
	LastError  string
	LeaseUntil time.Time
}

// RecordAttempt persists a failed attempt between retries so a restart can
// resume from the recorded count.
func (q *Queries) RecordAttempt(ctx context.Context, arg RecordAttemptParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'retrying', attempt = $2, last_error = $3,
		    lease_expires_at = $4, updated_at = now()
		WHERE external_id = $1`,
		arg.ExternalID, arg.Attempt,
		pgtype.Text{String: arg.LastError, Valid: arg.LastError != ""},
		pgtype.Timestamptz{Time: arg.LeaseUntil, Valid: true},
	)
	return err
}

func (q *Queries) MarkCompleted(ctx context.Context, externalID string) error {
	_, err := q.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'completed', last_error = NULL, lease_expires_at = NULL,
		    updated_at = now()
		WHERE external_id = $1`,
		externalID,
	)
	return err
}

type MarkFailedParams struct {
	ExternalID string
	Attempt    int32
	LastError  string
}

func (q *Queries) MarkFailed(ctx context.Context, arg MarkFailedParams) error {
	_, err := q.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'failed', attempt = $2, last_error = $3,
		    lease_expires_at = NULL, updated_at = now()
		WHERE external_id = $1`,
		arg.ExternalID, arg.Attempt,
		pgtype.Text{String: arg.LastError, Valid: arg.LastError != ""},
	)
	return err
}

// Release puts an event back to pending with no lease, used when the caller's
// deadline expired mid-processing and a redelivery should pick it up.
func (q *Queries) Release(ctx context.Context, externalID string) error {
	_, err := q.db.Exec(ctx, `
		UPDATE billing_events
		SET status = 'pending', lease_expires_at = NULL, updated_at = now()
		WHERE external_id = $1 AND status NOT IN ('completed', 'failed')`,
		externalID,
	)
	return err
}

func scanEvent(row pgx.Row) (model.BillingEvent, error) {
	var (
		ev        model.BillingEvent
		eventType string
		received  pgtype.Timestamptz
		status    string
		lastError pgtype.Text
		lease     pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&ev.ID, &ev.ExternalID, &eventType, &ev.Payload, &received, &status,
		&ev.Attempt, &lastError, &lease, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.BillingEvent{}, err
	}
	ev.Type = model.EventType(eventType)
	ev.ReceivedAt = received.Time
	ev.Status = model.EventStatus(status)
	if lastError.Valid {
		ev.LastError = &lastError.String
	}
	ev.CreatedAt = createdAt.Time
	ev.UpdatedAt = updatedAt.Time
	return ev, nil
}
