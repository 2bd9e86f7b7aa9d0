package commands

import (
	"context"
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// CreatePodCommandHandler handles the business logic for proof-of-delivery
// creation. The pod insert, the package's transition to Collected and both
// audit entries commit in one transaction; the unique index on the pod's
// package id makes create-once atomic under concurrency.
type CreatePodCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewCreatePodCommandHandler creates a handler for proof-of-delivery creation.
func NewCreatePodCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) CreatePodCommandHandler {
	return CreatePodCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the pod creation command.
//
// Fails with NotFound when the package does not exist, DuplicatePod when a pod
// already exists for the package, and AlreadyCollected when the package reached
// Collected without one. DuplicatePod wins over AlreadyCollected: the first
// createPod leaves the package Collected, so a repeat attempt must report the
// existing pod, not the package state. Staff and package fields are snapshotted
// onto the pod at this instant; later renames never touch the record.
func (h CreatePodCommandHandler) Handle(ctx context.Context, cmd CreatePodCommand) error {
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

	if !parcel.TransitionCollect.Permits(caller.Role()) {
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), "createPod")
		return appendDenial(ctx, h.denialAudit,
			audit.ActionPodCreateDenied, audit.EntityPackage, cmd.PackageID().String(), caller.ID(), denial)
	}

	pkg, err := uow.PackageRepository().GetForUpdate(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	podRepo := uow.PodRepository()

	existing, err := podRepo.GetByPackageID(ctx, pkg.ID())
	if err == nil {
		denial := errs.NewDuplicatePodError(pkg.ID().String(), existing.Reference().String())
		return appendDenial(ctx, h.denialAudit,
			audit.ActionPodCreateDenied, audit.EntityPackage, pkg.ID().String(), caller.ID(), denial)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if pkg.Status() == parcel.Collected {
		return errs.NewAlreadyCollectedError(pkg.TrackingRef().String())
	}

	now := time.Now()

	reference, err := podRepo.NextReference(ctx, now.Year())
	if err != nil {
		return err
	}

	record, err := pod.NewPod(
		cmd.PodID(),
		reference,
		pkg.ID(),
		pod.Snapshot{
			PackageRef:    pkg.TrackingRef(),
			ReceiverEmail: pkg.ReceiverEmail(),
			StaffName:     caller.Name(),
			StaffEmail:    caller.Email(),
		},
		caller.ID(),
		cmd.SignatureRef(),
		cmd.SignedAt(),
		now,
	)
	if err != nil {
		return err
	}

	if err = podRepo.Add(ctx, record); err != nil {
		if errors.Is(err, errs.ErrDuplicatePod) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionPodCreateDenied, audit.EntityPackage, pkg.ID().String(), caller.ID(), err)
		}
		return err
	}

	if err = pkg.Collect(caller.ID(), now); err != nil {
		return err
	}

	if err = uow.PackageRepository().Update(ctx, pkg); err != nil {
		return err
	}

	if err = h.auditCreation(ctx, uow.AuditRepository(), record, pkg, caller.ID(), now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreatePodCommandHandler) auditCreation(
	ctx context.Context,
	auditRepo ports.AuditRepository,
	record *pod.Pod,
	pkg *parcel.Package,
	callerID kernel.UUID,
	now time.Time,
) error {
	podCreated, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPodCreated,
		audit.EntityPod,
		record.ID().String(),
		callerID,
		map[string]any{
			"reference":   record.Reference().String(),
			"trackingRef": pkg.TrackingRef().String(),
		},
		now,
	)
	if err != nil {
		return err
	}
	if err = auditRepo.Append(ctx, podCreated); err != nil {
		return err
	}

	collected, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPackageCollected,
		audit.EntityPackage,
		pkg.ID().String(),
		callerID,
		map[string]any{
			"trackingRef":  pkg.TrackingRef().String(),
			"podReference": record.Reference().String(),
		},
		now,
	)
	if err != nil {
		return err
	}
	return auditRepo.Append(ctx, collected)
}
