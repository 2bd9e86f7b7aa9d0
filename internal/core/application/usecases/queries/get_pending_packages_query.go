package queries

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/guard"
)

// ErrGetPendingPackagesQueryIsNotConstructed is returned when the query was
// not created through its constructor.
var ErrGetPendingPackagesQueryIsNotConstructed = errors.New(
	"GetPendingPackagesQuery must be created via NewGetPendingPackagesQuery")

// GetPendingPackagesQuery requests packages still awaiting their arrival
// notification. Feeds the notification redelivery job.
type GetPendingPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPackagesQuery creates a query for packages in the pending status.
func NewGetPendingPackagesQuery() GetPendingPackagesQuery {
	return GetPendingPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPackagesQueryIsNotConstructed)
}

// GetPendingPackagesQueryResponse is one package awaiting notification.
// CreatedBy identifies the staff member on whose behalf a redelivery runs.
type GetPendingPackagesQueryResponse struct {
	ID        kernel.UUID
	CreatedBy kernel.UUID
	CreatedAt time.Time
}
