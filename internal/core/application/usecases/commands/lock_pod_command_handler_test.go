package commands_test

import (
	"testing"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLockPodCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	record := newUnlockedPod(t, caller.ID())
	cmd, err := commands.NewLockPodCommand(record.ID(), caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, record.PackageID()).Return(newReadyPackage(t), nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	podRepo.On("MarkLocked", ctx, mock.MatchedBy(func(p *pod.Pod) bool {
		return p.IsLocked() && p.LockedAt() != nil
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PackageRepository").Return(packageRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLockPodCommandHandler(factory, new(MockAuditAppender))
	require.NoError(t, h.Handle(ctx, cmd))

	podRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestLockPodCommandHandler_Handle_SecondLockIsDeniedEvenForAdmin(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Admin)
	record := newLockedPod(t, caller.ID())
	cmd, err := commands.NewLockPodCommand(record.ID(), caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, record.PackageID()).Return(newReadyPackage(t), nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PackageRepository").Return(packageRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLockPodCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyLocked)
	denialAudit.AssertExpectations(t)
	podRepo.AssertNotCalled(t, "MarkLocked", mock.Anything, mock.Anything)
}

func TestLockPodCommandHandler_Handle_ForbiddenCaller(t *testing.T) {
	ctx := t.Context()
	creator := newActiveStaff(t, staff.Collection)
	caller := newActiveStaff(t, staff.Driver)
	record := newUnlockedPod(t, creator.ID())
	cmd, err := commands.NewLockPodCommand(record.ID(), caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, record.PackageID()).Return(newReadyPackage(t), nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PackageRepository").Return(packageRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLockPodCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	denialAudit.AssertExpectations(t)
}

func TestLockPodCommandHandler_Handle_LostGuardedUpdateRace(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	record := newUnlockedPod(t, caller.ID())
	cmd, err := commands.NewLockPodCommand(record.ID(), caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, record.PackageID()).Return(newReadyPackage(t), nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	podRepo.On("MarkLocked", ctx, mock.Anything).
		Return(errs.NewAlreadyLockedError(record.Reference().String(), record.SignedAt())).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PackageRepository").Return(packageRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLockPodCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyLocked)
	denialAudit.AssertExpectations(t)
}
