package ledger

import (
	"context"
	"errors"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

// completedCluster backs the fast-path acknowledgement of replayed events.
var completedCluster = cache.NewCluster("billing-event-acks", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// completedEvents marks external event IDs that reached terminal success.
// Expiry only bounds the fast path; the billing_events row stays forever.
var completedEvents = cache.NewStringKeyspace[string](completedCluster, cache.KeyspaceConfig{
	KeyPattern:    "completed-event/:key",
	DefaultExpiry: cache.ExpireIn(24 * time.Hour),
})

// ackCache is the seam that keeps unit tests off the cache cluster.
type ackCache interface {
	has(ctx context.Context, externalID string) bool
	set(ctx context.Context, externalID string)
}

type keyspaceAckCache struct{}

func (keyspaceAckCache) has(ctx context.Context, externalID string) bool {
	_, err := completedEvents.Get(ctx, externalID)
	if err != nil {
		if !errors.Is(err, cache.Miss) {
			rlog.Warn("completed-event cache lookup failed", "external_id", externalID, "error", err)
		}
		return false
	}
	return true
}

func (keyspaceAckCache) set(ctx context.Context, externalID string) {
	if err := completedEvents.Set(ctx, externalID, "1"); err != nil {
		rlog.Warn("failed to cache completed event", "external_id", externalID, "error", err)
	}
}
