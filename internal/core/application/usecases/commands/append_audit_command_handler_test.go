package commands_test

import (
	"testing"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppendAuditCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Driver)
	packageID := kernel.NewUUID()
	cmd, err := commands.NewAppendAuditCommand(
		kernel.NewUUID(),
		audit.Action("DAMAGE_REPORTED"),
		audit.EntityPackage,
		packageID.String(),
		map[string]any{"note": "crushed corner"},
		caller.ID(),
	)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", ctx, mock.MatchedBy(func(entry audit.Entry) bool {
		return entry.Action() == audit.Action("DAMAGE_REPORTED") &&
			entry.EntityID() == packageID.String() &&
			entry.PerformedBy().IsEqual(caller.ID())
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendAuditCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	auditRepo.AssertExpectations(t)
}

func TestAppendAuditCommandHandler_Handle_DeactivatedCaller(t *testing.T) {
	ctx := t.Context()
	caller := newDeactivatedStaff(t, staff.Warehouse)
	cmd, err := commands.NewAppendAuditCommand(
		kernel.NewUUID(),
		audit.Action("DAMAGE_REPORTED"),
		audit.EntityPackage,
		kernel.NewUUID().String(),
		nil,
		caller.ID(),
	)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendAuditCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDeactivated)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAppendAuditCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockUoWFactory)

	h := commands.NewAppendAuditCommandHandler(factory)
	err := h.Handle(t.Context(), commands.AppendAuditCommand{})

	require.ErrorIs(t, err, commands.ErrAppendAuditCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
