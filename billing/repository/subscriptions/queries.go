package subscriptions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/billing/model"
)

const subscriptionColumns = `
	id, organization_id, external_customer_id, external_subscription_id,
	plan, status, current_period_start, current_period_end,
	cancel_at_period_end, trial_used, trial_start_date, trial_end_date,
	last_payment_date, next_billing_date, payment_method, created_at, updated_at`

// Create inserts the implicit free/none record for a new organization. A
// unique violation means it already exists; the caller fetches instead.
func (q *Queries) Create(ctx context.Context, organizationID string) (model.Subscription, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO subscriptions (organization_id, plan, status)
		VALUES ($1, 'free', 'none')
		RETURNING`+subscriptionColumns,
		organizationID,
	)
	return scanSubscription(row)
}

func (q *Queries) GetByOrganizationID(ctx context.Context, organizationID string) (model.Subscription, error) {
	return q.getWhere(ctx, `organization_id = $1`, organizationID)
}

func (q *Queries) GetByExternalSubscriptionID(ctx context.Context, externalSubscriptionID string) (model.Subscription, error) {
	return q.getWhere(ctx, `external_subscription_id = $1`, externalSubscriptionID)
}

func (q *Queries) GetByExternalCustomerID(ctx context.Context, externalCustomerID string) (model.Subscription, error) {
	return q.getWhere(ctx, `external_customer_id = $1`, externalCustomerID)
}

// GetForUpdate locks the row for the duration of the enclosing transaction.
func (q *Queries) GetForUpdate(ctx context.Context, organizationID string) (model.Subscription, error) {
	row := q.db.QueryRow(ctx, `
		SELECT`+subscriptionColumns+`
		FROM subscriptions
		WHERE organization_id = $1
		FOR UPDATE`,
		organizationID,
	)
	return scanSubscription(row)
}

// Update writes the full snapshot in a single statement. Concurrent handlers
// for different events resolve via last-write-wins, consistent with the
// processor-is-truth tie-break.
func (q *Queries) Update(ctx context.Context, sub model.Subscription) (model.Subscription, error) {
	var paymentMethod []byte
	if sub.PaymentMethod != nil {
		b, err := json.Marshal(sub.PaymentMethod)
		if err != nil {
			return model.Subscription{}, err
		}
		paymentMethod = b
	}
	row := q.db.QueryRow(ctx, `
		UPDATE subscriptions
		SET external_customer_id = $2,
		    external_subscription_id = $3,
		    plan = $4,
		    status = $5,
		    current_period_start = $6,
		    current_period_end = $7,
		    cancel_at_period_end = $8,
		    trial_used = $9,
		    trial_start_date = $10,
		    trial_end_date = $11,
		    last_payment_date = $12,
		    next_billing_date = $13,
		    payment_method = $14,
		    updated_at = now()
		WHERE organization_id = $1
		RETURNING`+subscriptionColumns,
		sub.OrganizationID,
		textPtr(sub.ExternalCustomerID),
		textPtr(sub.ExternalSubscriptionID),
		string(sub.Plan),
		string(sub.Status),
		timestampPtr(sub.CurrentPeriodStart),
		timestampPtr(sub.CurrentPeriodEnd),
		sub.CancelAtPeriodEnd,
		sub.TrialUsed,
		timestampPtr(sub.TrialStartDate),
		timestampPtr(sub.TrialEndDate),
		timestampPtr(sub.LastPaymentDate),
		timestampPtr(sub.NextBillingDate),
		paymentMethod,
	)
	return scanSubscription(row)
}

func (q *Queries) getWhere(ctx context.Context, where string, arg interface{}) (model.Subscription, error) {
	row := q.db.QueryRow(ctx, `
		SELECT`+subscriptionColumns+`
		FROM subscriptions
		WHERE `+where,
		arg,
	)
	return scanSubscription(row)
}

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func timestampPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func scanSubscription(row pgx.Row) (model.Subscription, error) {
	var (
		sub           model.Subscription
		customerID    pgtype.Text
		subID         pgtype.Text
		plan          string
		status        string
		periodStart   pgtype.Timestamptz
		periodEnd     pgtype.Timestamptz
		trialStart    pgtype.Timestamptz
		trialEnd      pgtype.Timestamptz
		lastPayment   pgtype.Timestamptz
		nextBilling   pgtype.Timestamptz
		paymentMethod []byte
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&sub.ID, &sub.OrganizationID, &customerID, &subID, &plan, &status,
		&periodStart, &periodEnd, &sub.CancelAtPeriodEnd, &sub.TrialUsed,
		&trialStart, &trialEnd, &lastPayment, &nextBilling, &paymentMethod,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Subscription{}, err
	}
	if customerID.Valid {
		sub.ExternalCustomerID = &customerID.String
	}
	if subID.Valid {
		sub.ExternalSubscriptionID = &subID.String
	}
	sub.Plan = model.Plan(plan)
	sub.Status = model.SubscriptionStatus(status)
	sub.CurrentPeriodStart = timeOrNil(periodStart)
	sub.CurrentPeriodEnd = timeOrNil(periodEnd)
	sub.TrialStartDate = timeOrNil(trialStart)
	sub.TrialEndDate = timeOrNil(trialEnd)
	sub.LastPaymentDate = timeOrNil(lastPayment)
	sub.NextBillingDate = timeOrNil(nextBilling)
	if len(paymentMethod) > 0 {
		var pm model.PaymentMethodSummary
		if err := json.Unmarshal(paymentMethod, &pm); err == nil {
			sub.PaymentMethod = &pm
		}
	}
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time
	return sub, nil
}

func timeOrNil(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
