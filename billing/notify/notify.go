// Package notify is the boundary to outbound notification delivery. The
// engine invokes it and logs failures; it never retries delivery itself.
package notify

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// Notifier dispatches tenant-facing billing notices.
type Notifier interface {
	TrialWillEnd(ctx context.Context, organizationID string, endsAt time.Time) error
	SubscriptionCanceled(ctx context.Context, organizationID string) error
}

// LogNotifier is the default used where no delivery channel is wired.
type LogNotifier struct{}

func NewLogNotifier() LogNotifier { return LogNotifier{} }

func (LogNotifier) TrialWillEnd(_ context.Context, organizationID string, endsAt time.Time) error {
	rlog.Info("trial ending notice", "organization_id", organizationID, "ends_at", endsAt)
	return nil
}

func (LogNotifier) SubscriptionCanceled(_ context.Context, organizationID string) error {
	rlog.Info("subscription canceled notice", "organization_id", organizationID)
	return nil
}
