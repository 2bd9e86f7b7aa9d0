// Package jobs provides scheduled background tasks for the ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRedeliveryJob - Runs every minute to re-attempt arrival
// notifications for packages still in the pending status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingPackagesHandler, notifyReceiverHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Notification delivery is advisory. A failed delivery leaves the package
// pending and the next run retries it; only unexpected errors are logged.
package jobs
