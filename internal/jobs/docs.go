// Package jobs provides scheduled background tasks for the coffee shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. BaristaAssignmentJob - Runs every second to assign the oldest pending order to a free barista
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignBaristaHandler, logger)
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
// The assignment job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps the queue moving without requiring
// an explicit trigger from the ordering flow.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no pending orders, no free baristas)
// - Failed job starts terminate startup
package jobs
