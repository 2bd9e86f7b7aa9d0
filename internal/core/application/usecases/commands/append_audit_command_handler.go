package commands

import (
	"context"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
)

// AppendAuditCommandHandler handles well-formed audit appends issued directly
// by staff. Any active staff member may append; there is no role gate.
type AppendAuditCommandHandler struct {
	uowFactory UoWFactory
}

// NewAppendAuditCommandHandler creates a handler for direct audit appends.
func NewAppendAuditCommandHandler(uowFactory UoWFactory) AppendAuditCommandHandler {
	return AppendAuditCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the append command. The timestamp comes from the server
// clock at handling time.
func (h AppendAuditCommandHandler) Handle(ctx context.Context, cmd AppendAuditCommand) error {
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

	entry, err := audit.NewEntry(
		cmd.EntryID(),
		cmd.Action(),
		cmd.EntityType(),
		cmd.EntityID(),
		caller.ID(),
		cmd.Metadata(),
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
