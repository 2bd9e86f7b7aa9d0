package commands

import (
	"context"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// NotifyReceiverCommandHandler handles the business logic for notification
// re-attempts. The channel stays advisory: a failed attempt leaves the package
// Pending and returns nil, only a confirmed delivery transitions to Notified.
type NotifyReceiverCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.ReceiverNotifier
	denialAudit ports.AuditAppender
}

// NewNotifyReceiverCommandHandler creates a handler for notification re-attempts.
func NewNotifyReceiverCommandHandler(
	uowFactory UoWFactory, notifier ports.ReceiverNotifier, denialAudit ports.AuditAppender,
) NotifyReceiverCommandHandler {
	return NotifyReceiverCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		denialAudit: denialAudit,
	}
}

// Handle processes the notification command. Fails with InvalidTransition when
// the package already left Pending.
func (h NotifyReceiverCommandHandler) Handle(ctx context.Context, cmd NotifyReceiverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	caller, err := resolveActiveCaller(ctx, uow.StaffRepository(), cmd.CallerID())
	if err != nil {
		return err
	}

	if !parcel.TransitionNotify.Permits(caller.Role()) {
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), "notifyReceiver")
		return appendDenial(ctx, h.denialAudit,
			audit.ActionTransitionDenied, audit.EntityPackage, cmd.PackageID().String(), caller.ID(), denial)
	}

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if pkg.Status() != parcel.Pending {
		return errs.NewInvalidTransitionError(pkg.Status().String(), parcel.TransitionNotify.String())
	}

	if h.notifier.NotifyArrival(ctx, pkg.TrackingRef(), pkg.ReceiverEmail()) != nil {
		// Best effort only. The package stays Pending for the next attempt.
		return nil
	}

	if err = pkg.MarkNotified(); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPackageNotified,
		audit.EntityPackage,
		pkg.ID().String(),
		caller.ID(),
		map[string]any{"trackingRef": pkg.TrackingRef().String()},
		time.Now(),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
