package subscriptions

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

// Querier is the subscriptions access surface, mockable for tests.
type Querier interface {
	Create(ctx context.Context, organizationID string) (model.Subscription, error)
	GetByOrganizationID(ctx context.Context, organizationID string) (model.Subscription, error)
	GetByExternalSubscriptionID(ctx context.Context, externalSubscriptionID string) (model.Subscription, error)
	GetByExternalCustomerID(ctx context.Context, externalCustomerID string) (model.Subscription, error)
	GetForUpdate(ctx context.Context, organizationID string) (model.Subscription, error)
	Update(ctx context.Context, sub model.Subscription) (model.Subscription, error)
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
