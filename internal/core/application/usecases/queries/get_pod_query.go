package queries

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrGetPodQueryIsNotConstructed = errors.New(
		"GetPodQuery must be created via one of the NewGetPodQueryBy* constructors",
	)
)

// GetPodQuery retrieves a single proof of delivery by id, by its public
// reference, or by the package it belongs to.
type GetPodQuery struct {
	guard guard.ConstructorGuard

	podID     *kernel.UUID
	reference string
	packageID *kernel.UUID
}

// NewGetPodQueryByID creates a query that looks the pod up by id.
func NewGetPodQueryByID(podID kernel.UUID) (GetPodQuery, error) {
	if err := podID.Validate(); err != nil {
		return GetPodQuery{}, errs.NewValueIsRequiredError("podID")
	}
	return GetPodQuery{
		guard: guard.NewConstructorGuard(),
		podID: &podID,
	}, nil
}

// NewGetPodQueryByReference creates a query that looks the pod up by its
// public reference.
func NewGetPodQueryByReference(reference string) (GetPodQuery, error) {
	if _, err := kernel.PodReferenceFromString(reference); err != nil {
		return GetPodQuery{}, err
	}
	return GetPodQuery{
		guard:     guard.NewConstructorGuard(),
		reference: reference,
	}, nil
}

// NewGetPodQueryByPackageID creates a query that looks the pod up by the
// package it documents. At most one pod exists per package.
func NewGetPodQueryByPackageID(packageID kernel.UUID) (GetPodQuery, error) {
	if err := packageID.Validate(); err != nil {
		return GetPodQuery{}, errs.NewValueIsRequiredError("packageID")
	}
	return GetPodQuery{
		guard:     guard.NewConstructorGuard(),
		packageID: &packageID,
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetPodQuery) Validate() error {
	return q.guard.Validate(ErrGetPodQueryIsNotConstructed)
}

// GetPodQueryResponse carries the pod read model including the point-in-time
// snapshot taken at creation.
type GetPodQueryResponse struct {
	ID        kernel.UUID
	Reference string
	PackageID kernel.UUID

	PackageRef    string
	ReceiverEmail string
	StaffName     string
	StaffEmail    string

	CreatedBy    kernel.UUID
	SignatureRef string
	SignedAt     time.Time
	CompletedAt  time.Time

	DocumentRef         string
	DocumentGeneratedAt *time.Time

	IsLocked bool
	LockedAt *time.Time
}
