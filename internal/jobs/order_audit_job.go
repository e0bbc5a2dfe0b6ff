package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AuditHandler runs one audit over all orders.
type AuditHandler interface {
	Handle(ctx context.Context, query queries.AuditOrdersQuery) ([]queries.AuditOrdersQueryResponse, error)
}

// AuditRecorder receives the outcome of every audit run.
type AuditRecorder interface {
	ObserveAudit(findings int, err error)
}

// OrderAuditJob periodically audits committed orders and logs inconsistencies.
type OrderAuditJob struct {
	handler  AuditHandler
	schedule string
	recorder AuditRecorder
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAuditJob creates a new audit job running on schedule.
func NewOrderAuditJob(
	handler AuditHandler,
	schedule string,
	recorder AuditRecorder,
	logger *slog.Logger,
) *OrderAuditJob {
	return &OrderAuditJob{
		handler:  handler,
		schedule: schedule,
		recorder: recorder,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the scheduler.
// Returns an error for an invalid schedule.
func (j *OrderAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *OrderAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order audit job stopped")
}

// run performs a single audit and returns the number of findings.
func (j *OrderAuditJob) run(ctx context.Context) int {
	findings, err := j.handler.Handle(ctx, queries.NewAuditOrdersQuery())
	j.recorder.ObserveAudit(len(findings), err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order audit job failed", "error", err)
		return 0
	}

	for _, finding := range findings {
		j.logger.ErrorContext(ctx, "Order is inconsistent",
			"order_id", finding.OrderID.String(),
			"error", finding.Problem,
		)
	}

	if len(findings) == 0 {
		j.logger.DebugContext(ctx, "Order audit passed")
	}
	return len(findings)
}
