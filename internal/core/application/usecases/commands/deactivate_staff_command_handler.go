package commands

import (
	"context"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/core/ports"
	"deliveryledger/internal/pkg/errs"
)

// DeactivateStaffCommandHandler handles staff deactivation. Admin only.
// Deactivation is a flag flip, never a delete.
type DeactivateStaffCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewDeactivateStaffCommandHandler creates a handler for staff deactivation.
func NewDeactivateStaffCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) DeactivateStaffCommandHandler {
	return DeactivateStaffCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the deactivation command.
func (h DeactivateStaffCommandHandler) Handle(ctx context.Context, cmd DeactivateStaffCommand) error {
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

	if caller.Role() != staff.Admin {
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), "deactivateStaff")
		return appendDenial(ctx, h.denialAudit,
			audit.ActionStaffChangeDenied, audit.EntityStaff, cmd.StaffID().String(), caller.ID(), denial)
	}

	member, err := uow.StaffRepository().Get(ctx, cmd.StaffID())
	if err != nil {
		return err
	}

	member.Deactivate()

	if err = uow.StaffRepository().Update(ctx, member); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionStaffDeactivated,
		audit.EntityStaff,
		member.ID().String(),
		caller.ID(),
		nil,
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
