// Package queries contains the read side of the application. Handlers run raw
// SQL against the database connection and return plain response structs;
// aggregates and the unit of work stay on the command side.
package queries

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrGetPackageQueryIsNotConstructed = errors.New(
		"GetPackageQuery must be created via NewGetPackageQueryByID or NewGetPackageQueryByTrackingRef",
	)
)

// GetPackageQuery retrieves a single package with its item lines and, when a
// proof of delivery exists, the pod reference.
//
// Example:
//
//	query, err := NewGetPackageQueryByTrackingRef("PKG-20250601-A7F3")
//	if err != nil {
//	    return err
//	}
//
//	pkg, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get package: %w", err)
//	}
//
//	fmt.Printf("%s is %s\n", pkg.TrackingRef, pkg.Status)
type GetPackageQuery struct {
	guard guard.ConstructorGuard

	packageID   *kernel.UUID
	trackingRef string
}

// NewGetPackageQueryByID creates a query that looks the package up by id.
func NewGetPackageQueryByID(packageID kernel.UUID) (GetPackageQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPackageQuery{}, errs.NewValueIsRequiredError("packageID")
	}
	return GetPackageQuery{
		guard:     guard.NewConstructorGuard(),
		packageID: &packageID,
	}, nil
}

// NewGetPackageQueryByTrackingRef creates a query that looks the package up by
// its public tracking reference.
func NewGetPackageQueryByTrackingRef(trackingRef string) (GetPackageQuery, error) {
	if _, err := kernel.TrackingRefFromString(trackingRef); err != nil {
		return GetPackageQuery{}, err
	}
	return GetPackageQuery{
		guard:       guard.NewConstructorGuard(),
		trackingRef: trackingRef,
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetPackageQuery) Validate() error {
	return q.guard.Validate(ErrGetPackageQueryIsNotConstructed)
}

// PackageItemResponse is one item line on a package, in registration order.
type PackageItemResponse struct {
	Quantity    int
	Description string
}

// GetPackageQueryResponse carries the package read model. PodReference is
// empty while no proof of delivery exists for the package.
type GetPackageQueryResponse struct {
	ID            kernel.UUID
	TrackingRef   string
	Status        string
	ReceiverEmail string
	Notes         string
	PurchaseOrder string
	Items         []PackageItemResponse

	CreatedBy kernel.UUID
	CreatedAt time.Time

	PickedUpAt  *time.Time
	ReceivedAt  *time.Time
	CollectedAt *time.Time

	PodReference string
}
