package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/subscriptions"
)

// TransitionFunc computes the next snapshot from the currently stored one.
// It must be a pure function of its input: the state machine may re-run it.
type TransitionFunc func(current model.Subscription) (model.Subscription, error)

// StateMachine owns the transaction boundary for subscription writes. Every
// mutation in the engine goes through Transition, so the lifecycle graph and
// the snapshot invariants are checked in exactly one place.
type StateMachine interface {
	Transition(ctx context.Context, organizationID string, apply TransitionFunc) (model.Subscription, error)
}

// SubscriptionStateMachine is the pgx-backed StateMachine.
type SubscriptionStateMachine struct {
	db   *pgxpool.Pool
	repo *subscriptions.Queries
}

func NewSubscriptionStateMachine(db *pgxpool.Pool, repo *subscriptions.Queries) *SubscriptionStateMachine {
	return &SubscriptionStateMachine{db: db, repo: repo}
}

// Transition locks the organization's row, applies the transition function,
// validates the result, and commits the new snapshot as a single atomic
// write. The row lock is the per-subscription serialization point; events for
// different subscriptions never contend.
func (sm *SubscriptionStateMachine) Transition(ctx context.Context, organizationID string, apply TransitionFunc) (model.Subscription, error) {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepo := sm.repo.WithTx(tx)

	current, err := txRepo.GetForUpdate(ctx, organizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Subscription{}, &errs.Error{Code: errs.NotFound, Message: "subscription not found"}
		}
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: "failed to lock subscription"}
	}

	next, err := apply(current)
	if err != nil {
		return model.Subscription{}, err
	}

	// Immutable/monotonic fields are not the apply function's to change.
	if next.OrganizationID != current.OrganizationID {
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: "organization_id is immutable"}
	}
	if current.TrialUsed && !next.TrialUsed {
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: monotonicViolation.Error()}
	}

	if err := ValidateTransition(current.Status, next.Status); err != nil {
		return model.Subscription{}, err
	}
	if err := CheckInvariants(next); err != nil {
		return model.Subscription{}, err
	}

	updated, err := txRepo.Update(ctx, next)
	if err != nil {
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: "failed to store subscription snapshot"}
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Subscription{}, &errs.Error{Code: errs.Internal, Message: "failed to commit subscription transition"}
	}
	return updated, nil
}
