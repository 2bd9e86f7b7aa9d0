package commands

import (
	"context"
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// TransitionPackageCommandHandler handles the business logic for package
// status transitions.
//
// Check order is fixed: locked pod first, then the caller's role gate, then
// source-status validity. A transition attempt against a package whose pod is
// locked is rejected with Locked regardless of the requested target or the
// caller's role.
type TransitionPackageCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewTransitionPackageCommandHandler creates a handler for status transitions.
func NewTransitionPackageCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) TransitionPackageCommandHandler {
	return TransitionPackageCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the transition command. The package row is read under a
// row lock so a concurrent pod lock for the same package serializes with the
// transition instead of racing it.
func (h TransitionPackageCommandHandler) Handle(ctx context.Context, cmd TransitionPackageCommand) error {
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

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	if err = h.ensurePodUnlocked(ctx, uow.PodRepository(), pkg.ID()); err != nil {
		if errors.Is(err, errs.ErrLocked) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionTransitionDenied, audit.EntityPackage, pkg.ID().String(), caller.ID(), err)
		}
		return err
	}

	if !cmd.Transition().Permits(caller.Role()) {
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), cmd.Transition().String())
		return appendDenial(ctx, h.denialAudit,
			audit.ActionTransitionDenied, audit.EntityPackage, pkg.ID().String(), caller.ID(), denial)
	}

	now := time.Now()
	if err = pkg.Apply(cmd.Transition(), caller.ID(), now); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		transitionAction(cmd.Transition()),
		audit.EntityPackage,
		pkg.ID().String(),
		caller.ID(),
		map[string]any{
			"transition":  cmd.Transition().String(),
			"trackingRef": pkg.TrackingRef().String(),
			"status":      pkg.Status().String(),
		},
		now,
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensurePodUnlocked returns a LockedError when the package already has a
// locked pod. A package without a pod passes.
func (h TransitionPackageCommandHandler) ensurePodUnlocked(
	ctx context.Context, podRepo ports.PodRepository, packageID kernel.UUID,
) error {
	p, err := podRepo.GetByPackageID(ctx, packageID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	return p.EnsureUnlocked()
}

// transitionAction maps an accepted transition to its audit action tag.
func transitionAction(t parcel.Transition) audit.Action {
	switch t {
	case parcel.TransitionPickup:
		return audit.ActionPackagePickedUp
	case parcel.TransitionReceive:
		return audit.ActionPackageReceived
	case parcel.TransitionCollect:
		return audit.ActionPackageCollected
	case parcel.TransitionReturn:
		return audit.ActionPackageReturned
	case parcel.TransitionNotify:
		return audit.ActionPackageNotified
	default:
		return audit.ActionTransitionDenied
	}
}
