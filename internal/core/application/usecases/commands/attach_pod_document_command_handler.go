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

// AttachPodDocumentCommandHandler handles the business logic for attaching a
// rendered document to a pod. Only the document fields change; a locked pod
// rejects the attempt and the denial is audited.
type AttachPodDocumentCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewAttachPodDocumentCommandHandler creates a handler for document attachment.
func NewAttachPodDocumentCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) AttachPodDocumentCommandHandler {
	return AttachPodDocumentCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the document attachment command. The caller must be the
// pod's creating staff member or an admin.
func (h AttachPodDocumentCommandHandler) Handle(ctx context.Context, cmd AttachPodDocumentCommand) error {
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

	if err = record.EnsureEditableBy(caller.ID(), caller.Role(), "attachPodDocument"); err != nil {
		return appendDenial(ctx, h.denialAudit,
			audit.ActionPodDocumentDenied, audit.EntityPod, record.ID().String(), caller.ID(), err)
	}

	now := time.Now()
	if err = record.AttachDocument(cmd.DocumentRef(), now); err != nil {
		if errors.Is(err, errs.ErrLocked) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionPodDocumentDenied, audit.EntityPod, record.ID().String(), caller.ID(), err)
		}
		return err
	}

	if err = podRepo.Update(ctx, record); err != nil {
		// The guarded update re-checks the lock; a pod locked after our read
		// surfaces here.
		if errors.Is(err, errs.ErrLocked) {
			return appendDenial(ctx, h.denialAudit,
				audit.ActionPodDocumentDenied, audit.EntityPod, record.ID().String(), caller.ID(), err)
		}
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionPodDocumentAttached,
		audit.EntityPod,
		record.ID().String(),
		caller.ID(),
		map[string]any{
			"reference":   record.Reference().String(),
			"documentRef": cmd.DocumentRef(),
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
