package commands

import (
	"context"
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// trackingRefAttempts bounds collision retries during reference generation.
// The suffix space is small enough that a busy day can collide; the unique
// index on tracking_ref is the final arbiter either way.
const trackingRefAttempts = 5

// ErrTrackingRefExhausted indicates reference generation collided on every
// attempt. Practically unreachable unless the packages table is saturated for
// the creation day.
var ErrTrackingRefExhausted = errors.New("could not generate a unique tracking reference")

// CreatePackageCommandHandler handles the business logic for package
// registration. Generates the tracking reference, attempts the advisory
// receiver notification and audits the registration in one transaction.
type CreatePackageCommandHandler struct {
	uowFactory  UoWFactory
	notifier    ports.ReceiverNotifier
	denialAudit ports.AuditAppender
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(
	uowFactory UoWFactory,
	notifier ports.ReceiverNotifier,
	denialAudit ports.AuditAppender,
) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		denialAudit: denialAudit,
	}
}

// Handle processes the package registration command.
//
// The caller must be active warehouse staff (or admin). The advisory
// notification is attempted once; confirmation moves the package to Notified,
// failure leaves it Pending without failing the registration.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, cmd CreatePackageCommand) error {
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

	if !caller.Role().Satisfies(staff.Warehouse) {
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), "createPackage")
		return appendDenial(ctx, h.denialAudit,
			audit.ActionPackageCreateDenied, audit.EntityPackage, cmd.PackageID().String(), caller.ID(), denial)
	}

	items := make([]parcel.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, itemErr := parcel.NewItem(input.Quantity, input.Description)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	now := time.Now()
	packageRepo := uow.PackageRepository()

	trackingRef, err := h.generateTrackingRef(ctx, packageRepo, now)
	if err != nil {
		return err
	}

	pkg, err := parcel.NewPackage(
		cmd.PackageID(),
		trackingRef,
		cmd.ReceiverEmail(),
		cmd.Notes(),
		cmd.PurchaseOrder(),
		cmd.DeliveryLocationID(),
		items,
		caller.ID(),
		now,
	)
	if err != nil {
		return err
	}

	notified := h.notifier.NotifyArrival(ctx, pkg.TrackingRef(), pkg.ReceiverEmail()) == nil
	if notified {
		if err = pkg.MarkNotified(); err != nil {
			return err
		}
	}

	if err = packageRepo.Add(ctx, pkg); err != nil {
		return err
	}

	auditRepo := uow.AuditRepository()
	if err = h.auditCreation(ctx, auditRepo, pkg, caller.ID(), notified); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreatePackageCommandHandler) generateTrackingRef(
	ctx context.Context, repo ports.PackageRepository, createdAt time.Time,
) (kernel.TrackingRef, error) {
	for range trackingRefAttempts {
		candidate := kernel.GenerateTrackingRef(createdAt)
		taken, err := repo.ExistsByTrackingRef(ctx, candidate)
		if err != nil {
			return kernel.TrackingRef{}, err
		}
		if !taken {
			return candidate, nil
		}
	}

	return kernel.TrackingRef{}, ErrTrackingRefExhausted
}

func (h CreatePackageCommandHandler) auditCreation(
	ctx context.Context,
	auditRepo ports.AuditRepository,
	pkg *parcel.Package,
	callerID kernel.UUID,
	notified bool,
) error {
	created, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPackageCreated,
		audit.EntityPackage,
		pkg.ID().String(),
		callerID,
		map[string]any{"trackingRef": pkg.TrackingRef().String()},
		time.Now(),
	)
	if err != nil {
		return err
	}
	if err = auditRepo.Append(ctx, created); err != nil {
		return err
	}

	if !notified {
		return nil
	}

	notifiedEntry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPackageNotified,
		audit.EntityPackage,
		pkg.ID().String(),
		callerID,
		map[string]any{"trackingRef": pkg.TrackingRef().String()},
		time.Now(),
	)
	if err != nil {
		return err
	}
	return auditRepo.Append(ctx, notifiedEntry)
}
