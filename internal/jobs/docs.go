// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderAuditJob - Re-checks every committed order's overall price and line uniqueness
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(auditHandler, config.AuditSchedule, metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, e.g. "*/30 * * * * *".
//
// # Error Handling
//
// - Every inconsistent order is logged at error level with its ID
// - Every run is reported to the AuditRecorder, including failed ones
// - A failed audit run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
