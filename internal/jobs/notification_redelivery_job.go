package jobs

import (
	"context"
	"errors"
	"log/slog"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/application/usecases/queries"
	"deliveryledger/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// NotificationRedeliveryJob re-attempts arrival notifications for packages
// that are still pending. Runs every minute; each attempt is dispatched on
// behalf of the staff member who registered the package, so a confirmed
// delivery is audited under that account.
type NotificationRedeliveryJob struct {
	pendingPackages queries.GetPendingPackagesQueryHandler
	notifyReceiver  commands.NotifyReceiverCommandHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewNotificationRedeliveryJob creates a new redelivery job.
func NewNotificationRedeliveryJob(
	pendingPackages queries.GetPendingPackagesQueryHandler,
	notifyReceiver commands.NotifyReceiverCommandHandler,
	logger *slog.Logger,
) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		pendingPackages: pendingPackages,
		notifyReceiver:  notifyReceiver,
		cron:            cron.New(),
		logger:          logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery job to run every minute.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification redelivery run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started (running every minute)")
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}

func (j *NotificationRedeliveryJob) run(ctx context.Context) error {
	pending, err := j.pendingPackages.Handle(ctx, queries.NewGetPendingPackagesQuery())
	if err != nil {
		return err
	}

	for _, pkg := range pending {
		cmd, err := commands.NewNotifyReceiverCommand(pkg.ID, pkg.CreatedBy)
		if err != nil {
			return err
		}

		if err = j.notifyReceiver.Handle(ctx, cmd); err != nil {
			// A package already moved on, or its creator was deactivated
			// since the read. Both resolve themselves; skip to the next one.
			if errors.Is(err, errs.ErrInvalidTransition) ||
				errors.Is(err, errs.ErrForbidden) ||
				errors.Is(err, errs.ErrDeactivated) {
				continue
			}
			j.logger.ErrorContext(ctx, "Notification redelivery failed",
				"packageID", pkg.ID.String(), "error", err)
		}
	}

	return nil
}
