package billing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/rlog"

	"encore.app/billing/audit"
	"encore.app/billing/ledger"
	"encore.app/billing/model"
	"encore.app/billing/retry"
	"encore.app/billing/signature"
	wf "encore.app/billing/workflow"
)

const (
	signatureHeader = "Billing-Signature"

	// maxEventBytes bounds webhook bodies; processor events are small.
	maxEventBytes = 1 << 20

	// eventProcessingTimeout bounds one delivery end to end, retries and
	// backoff included, so a stuck event cannot pin the transport's request
	// lifetime. On expiry the claim is released for redelivery.
	eventProcessingTimeout = 60 * time.Second
)

// ProcessEventResult is the intake outcome surfaced to the transport.
type ProcessEventResult struct {
	Accepted         bool   `json:"accepted"`
	EventID          string `json:"event_id"`
	AlreadyCompleted bool   `json:"already_completed"`
}

// ProcessorWebhook is the raw intake endpoint. It answers 2xx for processed,
// already-completed and business-failure outcomes alike; only a bad
// signature or an unparseable body earns an error status, because those are
// the only conditions a processor redelivery cannot fix.
//
//encore:api public raw method=POST path=/webhooks/processor
func (s *Service) ProcessorWebhook(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxEventBytes))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	result, err := s.processEvent(req.Context(), req.Header.Get(signatureHeader), body)
	if err != nil {
		switch {
		case errors.Is(err, signature.ErrInvalidSignature), errors.Is(err, signature.ErrMalformedPayload):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			// Intake bookkeeping failed before any handler ran; a non-2xx
			// answer makes the processor redeliver once the store recovers.
			http.Error(w, "event intake unavailable", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		rlog.Error("failed to write webhook response", "error", err)
	}
}

// processEvent drives one delivery through verification, the idempotency
// ledger, dispatch and the retry executor. Each delivery runs on its own
// request goroutine, so a slow or retrying event never blocks intake for
// other tenants.
func (s *Service) processEvent(ctx context.Context, sigHeader string, body []byte) (*ProcessEventResult, error) {
	env, err := s.verifier.Verify(body, sigHeader)
	if err != nil {
		rlog.Warn("rejected unauthenticated event delivery", "error", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, eventProcessingTimeout)
	defer cancel()

	ev, err := s.ledger.Claim(ctx, env.ID, env.Type, body, time.Now().UTC())
	switch {
	case errors.Is(err, ledger.ErrAlreadyCompleted):
		rlog.Info("acknowledging replayed event", "event_id", env.ID, "event_type", env.Type)
		return &ProcessEventResult{Accepted: true, EventID: env.ID, AlreadyCompleted: true}, nil
	case errors.Is(err, ledger.ErrInFlight):
		rlog.Info("event already in flight, acknowledging", "event_id", env.ID)
		return &ProcessEventResult{Accepted: true, EventID: env.ID}, nil
	case err != nil:
		rlog.Error("failed to claim event", "event_id", env.ID, "error", err)
		return nil, err
	}

	h := s.registry.Resolve(env.Type)
	execErr := s.executor.Execute(ctx, &ev, h, env, s.ledger)
	switch {
	case execErr == nil:
		if err := s.ledger.MarkCompleted(ctx, ev.ExternalID); err != nil {
			// Handlers are idempotent, so letting a redelivery re-run them
			// is safe; completion just gets recorded on that pass.
			rlog.Error("failed to mark event completed", "event_id", ev.ExternalID, "error", err)
		}
		s.recordAudit(env, model.EventStatusCompleted, nil)
		s.afterProcessed(env)
		return &ProcessEventResult{Accepted: true, EventID: env.ID}, nil

	case errors.Is(execErr, context.DeadlineExceeded) || errors.Is(execErr, context.Canceled):
		s.ledger.Release(context.WithoutCancel(ctx), ev.ExternalID)
		rlog.Warn("event processing timed out, released for redelivery", "event_id", ev.ExternalID)
		return &ProcessEventResult{Accepted: true, EventID: env.ID}, nil

	default:
		var exhausted *retry.ExhaustedError
		if errors.As(execErr, &exhausted) {
			rlog.Error("event failed after exhausting retries",
				"event_id", ev.ExternalID, "event_type", env.Type,
				"attempts", exhausted.Attempts, "error", exhausted.Last)
		} else {
			rlog.Error("event failed permanently",
				"event_id", ev.ExternalID, "event_type", env.Type, "error", execErr)
		}
		s.recordAudit(env, model.EventStatusFailed, execErr)
		// Still a 2xx at the transport: redelivering a business failure
		// that will never resolve only creates retry storms.
		return &ProcessEventResult{Accepted: false, EventID: env.ID}, nil
	}
}

func (s *Service) recordAudit(env *model.EventEnvelope, status model.EventStatus, procErr error) {
	metadata := map[string]string{}
	if procErr != nil {
		metadata["error"] = procErr.Error()
	}
	rec := audit.NewRecord(env.ID, env.Type, status, metadata)
	runAsync("audit_record", func(ctx context.Context) error {
		return s.audit.Record(ctx, rec)
	})
}

// afterProcessed hooks the trial workflow into the event stream: a trial
// checkout starts it, conversion and deletion events stop it. Workflow
// trouble never fails the processed event.
func (s *Service) afterProcessed(env *model.EventEnvelope) {
	switch env.Type {
	case model.EventCheckoutCompleted:
		payload, err := env.CheckoutSession()
		if err != nil || !payload.HasTrial() {
			return
		}
		trialEnd := model.UnixTime(payload.TrialEnd)
		runAsync("start_trial_workflow", func(ctx context.Context) error {
			return s.startTrialWorkflow(ctx, payload.OrganizationID(), payload.Subscription, *trialEnd)
		})

	case model.EventPaymentSucceeded:
		payload, err := env.Invoice()
		if err != nil || payload.Subscription == "" {
			return
		}
		s.signalTrialWorkflow(payload.Subscription, wf.TrialConvertedSignalName,
			wf.TrialConvertedSignal{ExternalSubscriptionID: payload.Subscription})

	case model.EventSubscriptionDeleted:
		payload, err := env.Subscription()
		if err != nil || payload.ID == "" {
			return
		}
		s.signalTrialWorkflow(payload.ID, wf.TrialCanceledSignalName,
			wf.TrialCanceledSignal{Reason: "subscription_deleted"})
	}
}

func (s *Service) startTrialWorkflow(ctx context.Context, organizationID, externalSubscriptionID string, trialEnd time.Time) error {
	workflowID := trialWorkflowID(externalSubscriptionID)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := wf.TrialPeriodParams{
		OrganizationID: organizationID,
		TrialEnd:       trialEnd,
	}
	_, err := s.temporal.ExecuteWorkflow(ctx, options, wf.TrialPeriod, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("trial workflow already started", "workflow_id", workflowID)
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) signalTrialWorkflow(externalSubscriptionID, signalName string, signal interface{}) {
	workflowID := trialWorkflowID(externalSubscriptionID)
	runAsync("signal_trial_workflow", func(ctx context.Context) error {
		err := s.temporal.SignalWorkflow(ctx, workflowID, "", signalName, signal)
		if err != nil {
			// No running workflow is the common case for non-trial
			// subscriptions; nothing to do.
			rlog.Debug("trial workflow signal skipped", "workflow_id", workflowID, "signal", signalName, "error", err)
		}
		return nil
	})
}

func trialWorkflowID(externalSubscriptionID string) string {
	return "trial-" + externalSubscriptionID
}
