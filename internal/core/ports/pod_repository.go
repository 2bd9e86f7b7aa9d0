package ports

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/pod"
)

// PodRepository defines the persistence contract for proof-of-delivery
// aggregates. There is deliberately no Delete method: pods are permanent.
type PodRepository interface {
	// Add persists a new pod aggregate to storage. The per-package uniqueness
	// check and the insert are a single atomic step; the loser of a concurrent
	// create receives a DuplicatePod error.
	Add(ctx context.Context, aggregate *pod.Pod) error

	// Update persists changes to an existing unlocked pod aggregate.
	Update(ctx context.Context, aggregate *pod.Pod) error

	// Get retrieves a pod aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pod.Pod, error)

	// GetByPackageID retrieves the pod recorded for a package, if any.
	GetByPackageID(ctx context.Context, packageID kernel.UUID) (*pod.Pod, error)

	// GetByReference retrieves a pod by its human-facing reference.
	GetByReference(ctx context.Context, reference kernel.PodReference) (*pod.Pod, error)

	// MarkLocked transitions is_locked from false to true as a single guarded
	// update. Exactly one of two concurrent calls wins; the loser receives an
	// AlreadyLocked error.
	MarkLocked(ctx context.Context, aggregate *pod.Pod) error

	// NextReference allocates the next value of the global pod sequence and
	// returns it as a reference for the given year. The counter never resets.
	NextReference(ctx context.Context, year int) (kernel.PodReference, error)
}
