package queries

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrGetUncollectedPackagesQueryIsNotConstructed = errors.New(
		"GetUncollectedPackagesQuery must be created via NewGetUncollectedPackagesQuery constructor",
	)
)

// GetUncollectedPackagesQuery retrieves every package that has not reached a
// terminal status yet. This is the operational dashboard surface: everything
// still moving through the pipeline.
//
// Example:
//
//	query := NewGetUncollectedPackagesQuery()
//	packages, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get uncollected packages: %w", err)
//	}
//
//	fmt.Printf("%d packages in flight\n", len(packages))
type GetUncollectedPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncollectedPackagesQuery creates a parameterless query for all
// non-terminal packages.
func NewGetUncollectedPackagesQuery() GetUncollectedPackagesQuery {
	return GetUncollectedPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncollectedPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetUncollectedPackagesQueryIsNotConstructed)
}

// GetUncollectedPackagesQueryResponse is one in-flight package.
type GetUncollectedPackagesQueryResponse struct {
	ID            kernel.UUID
	TrackingRef   string
	Status        string
	ReceiverEmail string
	CreatedAt     time.Time
}
