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

func TestAttachPodDocumentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	record := newUnlockedPod(t, caller.ID())
	cmd, err := commands.NewAttachPodDocumentCommand(record.ID(), "documents/pod.pdf", caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	podRepo.On("Update", ctx, mock.MatchedBy(func(p *pod.Pod) bool {
		return p.DocumentRef() == "documents/pod.pdf" && p.DocumentGeneratedAt() != nil
	})).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPodDocumentCommandHandler(factory, new(MockAuditAppender))
	require.NoError(t, h.Handle(ctx, cmd))

	podRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestAttachPodDocumentCommandHandler_Handle_LockedPodIsDenied(t *testing.T) {
	ctx := t.Context()
	caller := newActiveStaff(t, staff.Collection)
	record := newLockedPod(t, caller.ID())
	cmd, err := commands.NewAttachPodDocumentCommand(record.ID(), "documents/pod.pdf", caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPodDocumentCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrLocked)
	denialAudit.AssertExpectations(t)
	podRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAttachPodDocumentCommandHandler_Handle_ForeignCallerIsDenied(t *testing.T) {
	ctx := t.Context()
	creator := newActiveStaff(t, staff.Collection)
	caller := newActiveStaff(t, staff.Collection)
	record := newUnlockedPod(t, creator.ID())
	cmd, err := commands.NewAttachPodDocumentCommand(record.ID(), "documents/pod.pdf", caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()

	denialAudit := new(MockAuditAppender)
	denialAudit.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPodDocumentCommandHandler(factory, denialAudit)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	denialAudit.AssertExpectations(t)
}

func TestAttachPodDocumentCommandHandler_Handle_AdminMayAttachToForeignPod(t *testing.T) {
	ctx := t.Context()
	creator := newActiveStaff(t, staff.Collection)
	caller := newActiveStaff(t, staff.Admin)
	record := newUnlockedPod(t, creator.ID())
	cmd, err := commands.NewAttachPodDocumentCommand(record.ID(), "documents/pod.pdf", caller.ID())
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", ctx, caller.ID()).Return(caller, nil).Once()

	podRepo := new(MockPodRepository)
	podRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	podRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo)
	uow.On("PodRepository").Return(podRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachPodDocumentCommandHandler(factory, new(MockAuditAppender))
	require.NoError(t, h.Handle(ctx, cmd))

	podRepo.AssertExpectations(t)
}
