// Package retry runs lifecycle handlers with bounded attempts and
// exponential backoff. Sleeping happens on the event's own goroutine and is
// context-aware, so a retrying event never blocks intake of other events.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"encore.dev/rlog"

	"encore.app/billing/handler"
	"encore.app/billing/model"
)

// Policy bounds the attempts for one event.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
}

// DefaultPolicy matches the processor redelivery guidance: three attempts,
// 1s base doubling up to 30s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2,
	}
}

// Recorder persists attempt progress so a restart resumes from the recorded
// count instead of starting over. The idempotency ledger implements it.
type Recorder interface {
	RecordAttempt(ctx context.Context, externalID string, attempt int32, lastError string) error
	MarkFailed(ctx context.Context, externalID string, attempt int32, lastError string) error
}

// ExhaustedError reports that every allowed attempt failed. The last handler
// error is kept for alerting; exhaustion is never silently swallowed.
type ExhaustedError struct {
	ExternalID string
	Attempts   int32
	Last       error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("event %s failed after %d attempts: %v", e.ExternalID, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// Executor runs handlers under a Policy. The sleep and jitter functions are
// injectable so tests simulate time instead of waiting it out.
type Executor struct {
	policy Policy
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(d time.Duration) time.Duration
}

func NewExecutor(policy Policy) *Executor {
	return &Executor{
		policy: policy,
		sleep:  sleepContext,
		jitter: defaultJitter,
	}
}

// NewExecutorWithClock is the test constructor; nil funcs fall back to the
// real sleeper/jitter.
func NewExecutorWithClock(policy Policy, sleep func(context.Context, time.Duration) error, jitter func(time.Duration) time.Duration) *Executor {
	e := NewExecutor(policy)
	if sleep != nil {
		e.sleep = sleep
	}
	if jitter != nil {
		e.jitter = jitter
	}
	return e
}

// Execute runs the handler for ev, starting from the attempt count already
// recorded on the event. On success it returns nil; the caller marks the
// ledger completed. Permanent errors and exhaustion are marked failed here
// and returned. A context cancellation mid-backoff returns ctx.Err() without
// marking the event terminal, so a redelivery or sweep can resume it.
func (e *Executor) Execute(ctx context.Context, ev *model.BillingEvent, h handler.Handler, env *model.EventEnvelope, rec Recorder) error {
	attempt := ev.Attempt

	for {
		err := h.Handle(ctx, env)
		if err == nil {
			return nil
		}
		attempt++

		if handler.IsPermanent(err) {
			if markErr := rec.MarkFailed(ctx, ev.ExternalID, attempt, err.Error()); markErr != nil {
				rlog.Error("failed to record permanent failure", "external_id", ev.ExternalID, "error", markErr)
			}
			return err
		}

		if int(attempt) >= e.policy.MaxAttempts {
			exhausted := &ExhaustedError{ExternalID: ev.ExternalID, Attempts: attempt, Last: err}
			if markErr := rec.MarkFailed(ctx, ev.ExternalID, attempt, err.Error()); markErr != nil {
				rlog.Error("failed to record exhaustion", "external_id", ev.ExternalID, "error", markErr)
			}
			return exhausted
		}

		if recErr := rec.RecordAttempt(ctx, ev.ExternalID, attempt, err.Error()); recErr != nil {
			rlog.Error("failed to record attempt", "external_id", ev.ExternalID, "attempt", attempt, "error", recErr)
		}

		delay := e.Delay(int(attempt))
		rlog.Info("retrying event", "external_id", ev.ExternalID, "attempt", attempt, "delay", delay, "error", err)
		if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

// Delay computes the backoff before attempt n+1 after n failures:
// min(base * multiplier^(n-1), max) plus up to 10% jitter to avoid
// synchronized retry storms across tenants.
func (e *Executor) Delay(failedAttempts int) time.Duration {
	if failedAttempts < 1 {
		failedAttempts = 1
	}
	backoff := float64(e.policy.BaseDelay) * math.Pow(e.policy.Multiplier, float64(failedAttempts-1))
	if capped := float64(e.policy.MaxDelay); backoff > capped {
		backoff = capped
	}
	return time.Duration(backoff) + e.jitter(time.Duration(backoff))
}

func defaultJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(d)/10 + 1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
