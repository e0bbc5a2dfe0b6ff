package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAuditJob *OrderAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	auditHandler AuditHandler,
	auditSchedule string,
	auditRecorder AuditRecorder,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAuditJob: NewOrderAuditJob(auditHandler, auditSchedule, auditRecorder, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start order audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderAuditJob.Stop()
}
