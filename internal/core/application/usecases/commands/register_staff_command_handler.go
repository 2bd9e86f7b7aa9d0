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

// RegisterStaffCommandHandler handles staff registration. Admin only.
type RegisterStaffCommandHandler struct {
	uowFactory  UoWFactory
	denialAudit ports.AuditAppender
}

// NewRegisterStaffCommandHandler creates a handler for staff registration.
func NewRegisterStaffCommandHandler(
	uowFactory UoWFactory, denialAudit ports.AuditAppender,
) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory:  uowFactory,
		denialAudit: denialAudit,
	}
}

// Handle processes the registration command.
func (h RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) error {
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
		denial := errs.NewForbiddenError(caller.ID().String(), caller.Role().String(), "registerStaff")
		return appendDenial(ctx, h.denialAudit,
			audit.ActionStaffChangeDenied, audit.EntityStaff, cmd.StaffID().String(), caller.ID(), denial)
	}

	member, err := staff.NewStaff(cmd.StaffID(), cmd.ExternalAccountID(), cmd.Name(), cmd.Email(), cmd.Role())
	if err != nil {
		return err
	}

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionStaffRegistered,
		audit.EntityStaff,
		member.ID().String(),
		caller.ID(),
		map[string]any{"role": member.Role().String()},
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
