package billing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/audit"
	"encore.app/billing/business/subscription"
	"encore.app/billing/dispatch"
	"encore.app/billing/domain"
	"encore.app/billing/handler"
	"encore.app/billing/ledger"
	"encore.app/billing/notify"
	"encore.app/billing/processor"
	"encore.app/billing/repository"
	"encore.app/billing/repository/subscriptions"
	"encore.app/billing/retry"
	"encore.app/billing/signature"
	wf "encore.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	WebhookSigningSecret string // shared secret for event signature verification
	ProcessorAPIKey      string // payment processor API key
	ProcessorProPriceID  string // processor price backing the pro plan
}

var validate = validator.New()

const taskQueue = "billing-lifecycle"

//encore:service
type Service struct {
	business subscription.Business
	ledger   *ledger.Ledger
	registry *dispatch.Registry
	executor *retry.Executor
	verifier *signature.Verifier
	audit    audit.Sink
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billingDB)

	rlog.Info("Initializing repositories")
	repo := repository.NewRepository(pgxdb)

	stateMachine := domain.NewSubscriptionStateMachine(pgxdb, subscriptions.New(pgxdb))
	processorClient := processor.NewStripeClient(secrets.ProcessorAPIKey, secrets.ProcessorProPriceID)
	notifier := notify.NewLogNotifier()
	business := subscription.NewBusiness(repo.Subscriptions, stateMachine, processorClient, notifier)

	wf.SetActivityDependencies(business)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}
	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(wf.TrialPeriod)
	w.RegisterActivity(wf.NotifyTrialEndingActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	registry := dispatch.NewRegistry(
		handler.NewUnhandled(),
		handler.NewCheckoutCompleted(business),
		handler.NewSubscriptionCreated(business),
		handler.NewSubscriptionUpdated(business),
		handler.NewSubscriptionDeleted(business),
		handler.NewTrialWillEnd(business),
		handler.NewPaymentSucceeded(business),
		handler.NewPaymentFailed(business),
	)

	return &Service{
		business: business,
		ledger:   ledger.New(repo.Events),
		registry: registry,
		executor: retry.NewExecutor(retry.DefaultPolicy()),
		verifier: signature.NewVerifier(secrets.WebhookSigningSecret),
		audit:    audit.NewLogSink(),
		temporal: temporalClient,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
