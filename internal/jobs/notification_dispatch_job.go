package jobs

import (
	"context"
	"log/slog"

	"remont/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchBatchLimit bounds the number of envelopes delivered per cycle.
const dispatchBatchLimit = 100

// NotificationDispatchJob drains the notification outbox on a schedule.
// Runs every second so notifications leave the system shortly after the
// producing operation commits.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a new job for draining the outbox.
// Uses DispatchNotificationsCommandHandler to deliver pending envelopes every second.
func NewNotificationDispatchJob(handler commands.DispatchNotificationsCommandHandler, logger *slog.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNotificationsCommand(dispatchBatchLimit)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build dispatch command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
