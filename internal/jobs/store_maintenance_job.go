package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StoreMaintenanceJob keeps the single-file SQLite store healthy over long
// uptimes: the write-ahead log is checkpointed and truncated, and the query
// planner statistics are refreshed.
type StoreMaintenanceJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStoreMaintenanceJob creates a job that runs the maintenance pragmas
// once an hour.
func NewStoreMaintenanceJob(db *gorm.DB, logger *slog.Logger) *StoreMaintenanceJob {
	return &StoreMaintenanceJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "store_maintenance_job"),
	}
}

// Start begins the maintenance job on an hourly schedule.
func (j *StoreMaintenanceJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		if err := j.db.WithContext(ctx).Exec(`PRAGMA wal_checkpoint(TRUNCATE)`).Error; err != nil {
			j.logger.ErrorContext(ctx, "WAL checkpoint failed", "error", err)
			return
		}
		if err := j.db.WithContext(ctx).Exec(`PRAGMA optimize`).Error; err != nil {
			j.logger.ErrorContext(ctx, "Store optimize failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Store maintenance completed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store maintenance job started (running hourly)")
	return nil
}

// Stop stops the maintenance job.
func (j *StoreMaintenanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store maintenance job stopped")
}
