// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order store.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute to log the per-status row counts
// 2. StoreMaintenanceJob - Runs hourly to checkpoint and optimize the SQLite store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the shared database handle
//	jobManager := jobs.NewJobManager(db, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; a failed run never
//   stops the job
// - Failed job starts will stop any already running jobs
package jobs
