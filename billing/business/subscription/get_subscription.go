package subscription

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// GetSubscription returns the organization's subscription record.
func (b *business) GetSubscription(ctx context.Context, organizationID string) (*model.Subscription, error) {
	sub, err := b.subRepo.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "subscription not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load subscription"}
	}
	return &sub, nil
}

// EnsureSubscription returns the organization's record, creating the
// implicit free/none one on first touch. Concurrent first touches resolve
// through the unique index on organization_id.
func (b *business) EnsureSubscription(ctx context.Context, organizationID string) (*model.Subscription, error) {
	sub, err := b.subRepo.GetByOrganizationID(ctx, organizationID)
	if err == nil {
		return &sub, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load subscription"}
	}

	created, err := b.subRepo.Create(ctx, organizationID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return b.GetSubscription(ctx, organizationID)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create subscription"}
	}
	return &created, nil
}

// resolveByExternal finds the subscription an event refers to. The customer
// fallback exists for created-class events that can land before the checkout
// handler stored the subscription ID.
func (b *business) resolveByExternal(ctx context.Context, externalSubscriptionID, externalCustomerID string, customerFallback bool) (*model.Subscription, error) {
	sub, err := b.subRepo.GetByExternalSubscriptionID(ctx, externalSubscriptionID)
	if err == nil {
		return &sub, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up subscription"}
	}
	if !customerFallback || externalCustomerID == "" {
		return nil, err
	}
	sub, err = b.subRepo.GetByExternalCustomerID(ctx, externalCustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up subscription"}
	}
	return &sub, nil
}
