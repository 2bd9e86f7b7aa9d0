package commands_test

import (
	"context"

	"deliveryledger/internal/core/application/usecases/commands"
	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByTrackingRef(ctx context.Context, ref kernel.TrackingRef) (*parcel.Package, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetAllPending(ctx context.Context) ([]*parcel.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) ExistsByTrackingRef(ctx context.Context, ref kernel.TrackingRef) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

type MockPodRepository struct{ mock.Mock }

func (m *MockPodRepository) Add(ctx context.Context, aggregate *pod.Pod) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPodRepository) Update(ctx context.Context, aggregate *pod.Pod) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPodRepository) Get(ctx context.Context, id kernel.UUID) (*pod.Pod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pod.Pod), args.Error(1)
}

func (m *MockPodRepository) GetByPackageID(ctx context.Context, packageID kernel.UUID) (*pod.Pod, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pod.Pod), args.Error(1)
}

func (m *MockPodRepository) GetByReference(ctx context.Context, reference kernel.PodReference) (*pod.Pod, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pod.Pod), args.Error(1)
}

func (m *MockPodRepository) MarkLocked(ctx context.Context, aggregate *pod.Pod) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPodRepository) NextReference(ctx context.Context, year int) (kernel.PodReference, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(kernel.PodReference), args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByExternalAccountID(ctx context.Context, externalAccountID string) (*staff.Staff, error) {
	args := m.Called(ctx, externalAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockAuditAppender struct{ mock.Mock }

func (m *MockAuditAppender) Append(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyArrival(ctx context.Context, trackingRef kernel.TrackingRef, receiverEmail string) error {
	args := m.Called(ctx, trackingRef, receiverEmail)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) PodRepository() ports.PodRepository {
	args := m.Called()
	return args.Get(0).(ports.PodRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
