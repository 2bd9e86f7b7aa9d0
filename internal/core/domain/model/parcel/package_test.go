package parcel_test

import (
	"testing"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, quantity int, description string) parcel.Item {
	t.Helper()
	item, err := parcel.NewItem(quantity, description)
	require.NoError(t, err)
	return item
}

func newTestPackage(t *testing.T) *parcel.Package {
	t.Helper()
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	pkg, err := parcel.NewPackage(
		kernel.NewUUID(),
		kernel.GenerateTrackingRef(createdAt),
		"receiver@example.com",
		"leave at reception",
		"PO-1234",
		nil,
		[]parcel.Item{mustItem(t, 2, "boxed laptops")},
		kernel.NewUUID(),
		createdAt,
	)
	require.NoError(t, err)
	return pkg
}

func TestNewItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		item, err := parcel.NewItem(3, "cables")

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "cables", item.Description())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := parcel.NewItem(quantity, "cables")
			require.Error(t, err)
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := parcel.NewItem(1, "")
		require.Error(t, err)
	})
}

func TestNewPackage(t *testing.T) {
	t.Run("starts in Pending status", func(t *testing.T) {
		pkg := newTestPackage(t)

		assert.Equal(t, parcel.Pending, pkg.Status())
		assert.Nil(t, pkg.PickedUpBy())
		assert.Nil(t, pkg.ReceivedBy())
		assert.Nil(t, pkg.CollectedBy())
		require.NoError(t, pkg.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		createdAt := time.Now()
		id := kernel.NewUUID()
		ref := kernel.GenerateTrackingRef(createdAt)
		items := []parcel.Item{mustItem(t, 1, "box")}
		creator := kernel.NewUUID()

		testCases := []struct {
			name  string
			setup func() (*parcel.Package, error)
		}{
			{
				name: "zero tracking ref",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, kernel.TrackingRef{}, "a@b.com", "", "", nil, items, creator, createdAt)
				},
			},
			{
				name: "empty receiver email",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, ref, "", "", "", nil, items, creator, createdAt)
				},
			},
			{
				name: "malformed receiver email",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, ref, "not an email", "", "", nil, items, creator, createdAt)
				},
			},
			{
				name: "empty item list",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, ref, "a@b.com", "", "", nil, nil, creator, createdAt)
				},
			},
			{
				name: "item bypassing constructor",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, ref, "a@b.com", "", "", nil, []parcel.Item{{}}, creator, createdAt)
				},
			},
			{
				name: "zero creator id",
				setup: func() (*parcel.Package, error) {
					return parcel.NewPackage(id, ref, "a@b.com", "", "", nil, items, kernel.UUID{}, createdAt)
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				pkg, err := tc.setup()

				require.Error(t, err)
				assert.Nil(t, pkg)
			})
		}
	})
}

func TestPackage_FullCollectionWalk(t *testing.T) {
	pkg := newTestPackage(t)
	driver := kernel.NewUUID()
	collector := kernel.NewUUID()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, pkg.MarkNotified())
	assert.Equal(t, parcel.Notified, pkg.Status())

	require.NoError(t, pkg.Pickup(driver, now))
	assert.Equal(t, parcel.InTransit, pkg.Status())
	require.NotNil(t, pkg.PickedUpBy())
	assert.True(t, driver.IsEqual(*pkg.PickedUpBy()))
	require.NotNil(t, pkg.PickedUpAt())
	assert.Equal(t, now, *pkg.PickedUpAt())

	receivedAt := now.Add(2 * time.Hour)
	require.NoError(t, pkg.Receive(collector, receivedAt))
	assert.Equal(t, parcel.ReadyForCollection, pkg.Status())
	require.NotNil(t, pkg.ReceivedBy())
	assert.True(t, collector.IsEqual(*pkg.ReceivedBy()))

	collectedAt := now.Add(4 * time.Hour)
	require.NoError(t, pkg.Collect(collector, collectedAt))
	assert.Equal(t, parcel.Collected, pkg.Status())
	require.NotNil(t, pkg.CollectedAt())
	assert.Equal(t, collectedAt, *pkg.CollectedAt())
	assert.True(t, pkg.Status().IsTerminal())
}

func TestPackage_InvalidTransitions(t *testing.T) {
	t.Run("double pickup fails", func(t *testing.T) {
		pkg := newTestPackage(t)
		driver := kernel.NewUUID()
		now := time.Now()

		require.NoError(t, pkg.Pickup(driver, now))

		err := pkg.Pickup(driver, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, parcel.InTransit, pkg.Status())
	})

	t.Run("collect before receive fails", func(t *testing.T) {
		pkg := newTestPackage(t)

		err := pkg.Collect(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, pkg.CollectedBy(), "failed transition must not set metadata")
	})

	t.Run("return from transit fails", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.Pickup(kernel.NewUUID(), time.Now()))

		err := pkg.MarkReturned()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("no transition leaves a terminal status", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.MarkReturned())

		require.Error(t, pkg.Pickup(kernel.NewUUID(), time.Now()))
		require.Error(t, pkg.MarkNotified())
		require.Error(t, pkg.Collect(kernel.NewUUID(), time.Now()))
	})
}

func TestPackage_Apply(t *testing.T) {
	t.Run("dispatches to the matching transition", func(t *testing.T) {
		pkg := newTestPackage(t)
		driver := kernel.NewUUID()
		now := time.Now()

		require.NoError(t, pkg.Apply(parcel.TransitionPickup, driver, now))
		assert.Equal(t, parcel.InTransit, pkg.Status())
		require.NotNil(t, pkg.PickedUpBy())
	})

	t.Run("rejects unknown transition", func(t *testing.T) {
		pkg := newTestPackage(t)

		err := pkg.Apply(parcel.UnknownTransition, kernel.NewUUID(), time.Now())
		require.Error(t, err)
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("restores status and metadata", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		pickedUpAt := createdAt.Add(time.Hour)
		driver := kernel.NewUUID()

		pkg, err := parcel.RestorePackage(
			kernel.NewUUID(),
			kernel.GenerateTrackingRef(createdAt),
			"receiver@example.com",
			"",
			"",
			nil,
			[]parcel.Item{mustItem(t, 1, "envelope")},
			parcel.InTransit,
			kernel.NewUUID(),
			createdAt,
			&driver, &pickedUpAt,
			nil, nil,
			nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, pkg.Status())
		require.NotNil(t, pkg.PickedUpBy())
		assert.True(t, driver.IsEqual(*pkg.PickedUpBy()))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		createdAt := time.Now()

		_, err := parcel.RestorePackage(
			kernel.NewUUID(),
			kernel.GenerateTrackingRef(createdAt),
			"receiver@example.com",
			"", "", nil,
			[]parcel.Item{mustItem(t, 1, "envelope")},
			parcel.UnknownStatus,
			kernel.NewUUID(),
			createdAt,
			nil, nil, nil, nil, nil, nil,
		)

		require.Error(t, err)
	})
}

func TestPackage_Validate(t *testing.T) {
	var pkg parcel.Package

	err := pkg.Validate()

	require.Error(t, err)
	assert.Equal(t, parcel.ErrPackageIsNotConstructed, err)
}

func TestPackage_ItemsAreCopied(t *testing.T) {
	pkg := newTestPackage(t)

	items := pkg.Items()
	items[0] = parcel.Item{}

	assert.Equal(t, 2, pkg.Items()[0].Quantity(), "mutating the returned slice must not affect the aggregate")
}
