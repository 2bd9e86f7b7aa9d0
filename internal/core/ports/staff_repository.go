package ports

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
// Staff are never deleted; deactivation is an Update flipping the flag.
type StaffRepository interface {
	// Add persists a new staff aggregate to storage.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists changes to an existing staff aggregate.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get retrieves a staff aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetByExternalAccountID retrieves the staff member bound to an
	// identity-provider account. Used to resolve callers.
	GetByExternalAccountID(ctx context.Context, externalAccountID string) (*staff.Staff, error)
}
