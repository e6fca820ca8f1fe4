// Package jobs provides scheduled background tasks for the repair order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every second to deliver pending outbox notifications
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchNotificationsHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps notification latency low while the
// outbox keeps delivery decoupled from order mutations.
//
// # Error Handling
//
// - Individual delivery failures are logged by the command handler and retried next cycle
// - Job-level failures (outbox unavailable) are logged and never crash the process
package jobs
