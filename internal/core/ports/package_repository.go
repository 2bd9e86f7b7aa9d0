// Package ports defines repository interfaces for the delivery-ledger domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package aggregate to storage.
	// The package must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists changes to an existing package aggregate.
	// The package must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package aggregate by its unique identifier.
	// Returns the complete package with its items and handling metadata.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetByTrackingRef retrieves a package aggregate by its tracking reference.
	GetByTrackingRef(ctx context.Context, ref kernel.TrackingRef) (*parcel.Package, error)

	// GetForUpdate retrieves a package aggregate by id while taking a row lock
	// for the lifetime of the current transaction. Status transitions and pod
	// locking both serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetAllPending retrieves all packages still in Pending status.
	// Used by the notification redelivery job.
	GetAllPending(ctx context.Context) ([]*parcel.Package, error)

	// ExistsByTrackingRef reports whether a package already carries the
	// reference. Used for collision-retried reference generation.
	ExistsByTrackingRef(ctx context.Context, ref kernel.TrackingRef) (bool, error)
}
