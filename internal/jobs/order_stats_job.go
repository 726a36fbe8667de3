package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderStatsJob periodically logs how many rows sit in each status.
// Gives operators a view of queue depth per lifecycle stage without a
// metrics stack.
type OrderStatsJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderStatsJob creates a job that reports order counts every minute.
func NewOrderStatsJob(db *gorm.DB, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job on a once-a-minute schedule.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		rows, err := j.db.WithContext(ctx).
			Raw(`SELECT estado, COUNT(*) FROM pedidos GROUP BY estado`).Rows()
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats query failed", "error", err)
			return
		}
		defer rows.Close()

		args := []any{}
		total := 0
		for rows.Next() {
			var estado string
			var count int
			if err := rows.Scan(&estado, &count); err != nil {
				j.logger.ErrorContext(ctx, "Order stats scan failed", "error", err)
				return
			}
			args = append(args, estado, count)
			total += count
		}
		if err := rows.Err(); err != nil {
			j.logger.ErrorContext(ctx, "Order stats query failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order counts", append([]any{"total", total}, args...)...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
