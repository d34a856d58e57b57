package events

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.app/billing/model"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Querier is the billing_events access surface, mockable for tests.
type Querier interface {
	InsertProcessing(ctx context.Context, arg InsertProcessingParams) (model.BillingEvent, error)
	ClaimExisting(ctx context.Context, arg ClaimExistingParams) (model.BillingEvent, error)
	GetByExternalID(ctx context.Context, externalID string) (model.BillingEvent, error)
	RecordAttempt(ctx context.Context, arg RecordAttemptParams) error
	MarkCompleted(ctx context.Context, externalID string) error
	MarkFailed(ctx context.Context, arg MarkFailedParams) error
	Release(ctx context.Context, externalID string) error
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns Queries bound to a transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
