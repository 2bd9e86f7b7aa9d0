package commands

import (
	"context"
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// LockPodCommandHandler handles the business logic for locking a pod.
//
// Locking is never idempotent: a second attempt fails with AlreadyLocked and
// the attempt is audited. The package row is read under a row lock first so a
// concurrent status transition for the same package serializes with the lock.
type LockPodCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewLockPodCommandHandler creates a handler for pod locking.
func NewLockPodCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) LockPodCommandHandler {
	return LockPodCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the lock command. The caller must be the pod's creating
// staff member or an admin. Once the guarded update succeeds the pod is
// permanently immutable; nothing in the system clears the flag again.
func (h LockPodCommandHandler) Handle(ctx context.Context, cmd LockPodCommand) error {
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

	podRepo := uow.PodRepository()
	record, err := podRepo.Get(ctx, cmd.PodID())
	if err != nil {
		return err
	}

	// Serialize with in-flight transitions on the same package row.
	if _, err = uow.PackageRepository().GetForUpdate(ctx, record.PackageID()); err != nil {
		return err
	}

	now := time.Now()
	if err = record.Lock(caller.ID(), caller.Role(), now); err != nil {
		if errors.Is(err, errs.ErrAlreadyLocked) || errors.Is(err, errs.ErrForbidden) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionPodLockDenied, audit.EntityPod, record.ID().String(), caller.ID(), err)
		}
		return err
	}

	if err = podRepo.MarkLocked(ctx, record); err != nil {
		// Lost the guarded-update race to a concurrent lock.
		if errors.Is(err, errs.ErrAlreadyLocked) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionPodLockDenied, audit.EntityPod, record.ID().String(), caller.ID(), err)
		}
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPodLocked,
		audit.EntityPod,
		record.ID().String(),
		caller.ID(),
		map[string]any{
			"reference": record.Reference().String(),
			"lockedAt":  now.Format(time.RFC3339),
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
