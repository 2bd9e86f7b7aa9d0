package commands_test

import (
	"testing"
	"time"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreatePodCommand(t *testing.T, packageID, callerID kernel.UUID) commands.CreatePodCommand {
	t.Helper()
	cmd, err := commands.NewCreatePodCommand(
		kernel.NewUUID(), packageID, "signatures/abc.png", time.Now(), callerID)
	require.NoError(t, err)
	return cmd
}

func TestCreatePodCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	pkg := newReadyPackage(t)
	cmd := validCreatePodCommand(t, pkg.ID(), caller.ID())

	reference, err := kernel.NewPodReference(time.Now().Year(), 42)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, pkg.ID()).Return(pkg, nil).Once()
	packageRepo.On("Update", ctx, mock.MatchedBy(func(p *parcel.Package) bool {
		return p.Status() == parcel.Collected
	})).Return(nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("GetByPackageID", ctx, pkg.ID()).
		Return(nil, errs.NewObjectNotFoundError("packageID", pkg.ID())).Once()
	podRepo.On("NextReference", ctx, time.Now().Year()).Return(reference, nil).Once()
	podRepo.On("Add", ctx, mock.MatchedBy(func(record *pod.Pod) bool {
		snapshot := record.Snapshot()
		return record.PackageID() == pkg.ID() &&
			record.Reference() == reference &&
			snapshot.StaffName == caller.Name() &&
			snapshot.ReceiverEmail == pkg.ReceiverEmail()
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", ctx, mock.Anything).Return(nil).Twice()

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

	h := commands.NewCreatePodCommandHandler(factory, new(MockAuditAppender))
	require.NoError(t, h.Handle(ctx, cmd))

	podRepo.AssertExpectations(t)
	packageRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestCreatePodCommandHandler_Handle_AlreadyCollected(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	pkg := newReadyPackage(t)
	require.NoError(t, pkg.Collect(caller.ID(), time.Now()))
	cmd := validCreatePodCommand(t, pkg.ID(), caller.ID())

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, pkg.ID()).Return(pkg, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("GetByPackageID", ctx, pkg.ID()).
		Return(nil, errs.NewObjectNotFoundError("packageID", pkg.ID())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PackageRepository").Return(packageRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePodCommandHandler(factory, new(MockAuditAppender))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyCollected)
	podRepo.AssertNotCalled(t, "NextReference", mock.Anything, mock.Anything)
}

func TestCreatePodCommandHandler_Handle_DuplicatePodIsAudited(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	pkg := newReadyPackage(t)
	cmd := validCreatePodCommand(t, pkg.ID(), caller.ID())

	reference, err := kernel.NewPodReference(time.Now().Year(), 42)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, pkg.ID()).Return(pkg, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("GetByPackageID", ctx, pkg.ID()).
		Return(nil, errs.NewObjectNotFoundError("packageID", pkg.ID())).Once()
	podRepo.On("NextReference", ctx, time.Now().Year()).Return(reference, nil).Once()
	podRepo.On("Add", ctx, mock.Anything).
		Return(errs.NewDuplicatePodError(pkg.ID().String(), "POD-2025-0041")).Once()

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

	h := commands.NewCreatePodCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicatePod)
	denialAudit.AssertExpectations(t)
	packageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreatePodCommandHandler_Handle_SecondCreateReportsDuplicate(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	pkg := newReadyPackage(t)
	require.NoError(t, pkg.Collect(caller.ID(), time.Now()))
	existing := newUnlockedPod(t, caller.ID())
	cmd := validCreatePodCommand(t, pkg.ID(), caller.ID())

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	packageRepo := new(MockPackageRepository)
	packageRepo.On("GetForUpdate", ctx, pkg.ID()).Return(pkg, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("GetByPackageID", ctx, pkg.ID()).Return(existing, nil).Once()

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

	h := commands.NewCreatePodCommandHandler(factory, denialAudit)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicatePod)
	require.NotErrorIs(t, err, errs.ErrAlreadyCollected)

	var dup *errs.DuplicatePodError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, existing.Reference().String(), dup.ExistingPodReference)

	denialAudit.AssertExpectations(t)
	podRepo.AssertNotCalled(t, "NextReference", mock.Anything, mock.Anything)
}

func TestCreatePodCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Driver)
	cmd := validCreatePodCommand(t, kernel.NewUUID(), caller.ID())

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePodCommandHandler(factory, denialAudit)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	denialAudit.AssertExpectations(t)
}
