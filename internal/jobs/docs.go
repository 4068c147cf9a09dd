// Package jobs provides scheduled background tasks for the order ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the shop relies on.
//
// # Available Jobs
//
// 1. DeliveryReminderJob - Scans for orders approaching their delivery date
// and publishes a reminder event per order so the counter staff can call
// customers ahead of time.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required jobs
//	jobManager := jobs.NewJobManager(reminderJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job takes a six-field cron expression, so deployments can run
// it anywhere from every minute in a busy shop to once a morning.
//
// # Error Handling
//
// - A failed scan is logged and retried on the next tick
// - A failed publish is ignored; the reminder resurfaces on the next scan
// - Failed job starts will stop any already running jobs
package jobs
