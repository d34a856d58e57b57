// Package handler holds one lifecycle handler per processor event type. Each
// handler decodes its payload shape and drives the subscription business
// layer; retry-vs-abort classification travels on the error code, never on
// message text.
package handler

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
)

// Handler processes one verified event envelope. Implementations must be
// idempotent: applying the same event twice yields the same end state.
type Handler interface {
	Type() model.EventType
	Handle(ctx context.Context, env *model.EventEnvelope) error
}

// IsPermanent reports whether an error should never be retried. The decision
// rides on the errs code so handlers and the business layer stay free to
// word messages however they like.
func IsPermanent(err error) bool {
	switch errs.Code(err) {
	case errs.InvalidArgument,
		errs.NotFound,
		errs.AlreadyExists,
		errs.PermissionDenied,
		errs.Unauthenticated,
		errs.FailedPrecondition,
		errs.Unimplemented:
		return true
	}
	return false
}

// malformedPayload marks a payload decoding failure permanent; a body that
// cannot be parsed today will not parse tomorrow either.
func malformedPayload(err error) error {
	return &errs.Error{Code: errs.InvalidArgument, Message: "malformed event payload: " + err.Error()}
}
