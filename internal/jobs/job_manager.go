package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob       *OrderStatsJob
	storeMaintenanceJob *StoreMaintenanceJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the shared database handle as a dependency to wire up job execution.
func NewJobManager(db *gorm.DB, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatsJob:       NewOrderStatsJob(db, logger),
		storeMaintenanceJob: NewStoreMaintenanceJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	if err := jm.storeMaintenanceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderStatsJob.Stop()
		return fmt.Errorf("failed to start store maintenance job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
	jm.storeMaintenanceJob.Stop()
}
