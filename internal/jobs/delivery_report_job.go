package jobs

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const displayDateLayout = "02-01-2006"

// DeliveryReportJob logs the orders due for delivery today.
// Runs every morning at 06:00 and never mutates order state.
type DeliveryReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDeliveryReportJob creates the daily delivery report job.
func NewDeliveryReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *DeliveryReportJob {
	return &DeliveryReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_report_job"),
		now:     time.Now,
	}
}

// Start schedules the report to run every morning at 06:00.
func (j *DeliveryReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery report job started (running daily at 06:00)")
	return nil
}

// Run produces one report for the current day. Exposed so the report can be
// triggered outside the schedule.
func (j *DeliveryReportJob) Run(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery report job failed", "error", err)
		return
	}

	today := j.now().UTC().Format(displayDateLayout)
	due := 0

	for _, o := range orders {
		if o.DeliveryDate != today {
			continue
		}

		due++
		j.logger.InfoContext(ctx, "Order due for delivery today",
			"order_id", o.ID,
			"customer_name", o.CustomerName,
			"status", o.Status,
		)
	}

	j.logger.InfoContext(ctx, "Delivery report completed", "date", today, "orders_due", due)
}

// Stop stops the delivery report job.
func (j *DeliveryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery report job stopped")
}
