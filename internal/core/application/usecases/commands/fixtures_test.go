package commands_test

import (
	"testing"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

func newActiveStaff(t *testing.T, role staff.Role) *staff.Staff {
	t.Helper()
	member, err := staff.NewStaff(
		kernel.NewUUID(), "acct-"+kernel.NewUUID().String(), "Dana Voss", "dana@example.com", role)
	require.NoError(t, err)
	return member
}

func newDeactivatedStaff(t *testing.T, role staff.Role) *staff.Staff {
	t.Helper()
	member := newActiveStaff(t, role)
	member.Deactivate()
	return member
}

func newPendingPackage(t *testing.T) *parcel.Package {
	t.Helper()
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	item, err := parcel.NewItem(1, "boxed laptop")
	require.NoError(t, err)

	pkg, err := parcel.NewPackage(
		kernel.NewUUID(),
		kernel.GenerateTrackingRef(createdAt),
		"receiver@example.com",
		"", "", nil,
		[]parcel.Item{item},
		kernel.NewUUID(),
		createdAt,
	)
	require.NoError(t, err)
	return pkg
}

func newReadyPackage(t *testing.T) *parcel.Package {
	t.Helper()
	pkg := newPendingPackage(t)
	require.NoError(t, pkg.Pickup(kernel.NewUUID(), time.Now()))
	require.NoError(t, pkg.Receive(kernel.NewUUID(), time.Now()))
	return pkg
}

func newUnlockedPod(t *testing.T, createdBy kernel.UUID) *pod.Pod {
	t.Helper()
	reference, err := kernel.NewPodReference(2025, 7)
	require.NoError(t, err)

	signedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	record, err := pod.NewPod(
		kernel.NewUUID(),
		reference,
		kernel.NewUUID(),
		pod.Snapshot{
			PackageRef:    kernel.GenerateTrackingRef(signedAt),
			ReceiverEmail: "receiver@example.com",
			StaffName:     "Dana Voss",
			StaffEmail:    "dana@example.com",
		},
		createdBy,
		"signatures/abc.png",
		signedAt,
		signedAt.Add(time.Minute),
	)
	require.NoError(t, err)
	return record
}

func newLockedPod(t *testing.T, createdBy kernel.UUID) *pod.Pod {
	t.Helper()
	record := newUnlockedPod(t, createdBy)
	require.NoError(t, record.Lock(createdBy, staff.Collection, time.Now()))
	return record
}
