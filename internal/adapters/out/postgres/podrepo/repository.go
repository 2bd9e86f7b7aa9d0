package podrepo

import (
	"context"
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/pod"
	"deliveryledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPodRepository implements PodRepository using GORM.
type GormPodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPodRepository creates a new GORM pod repository.
func NewGormPodRepository(db *gorm.DB, tracker aggregateTracker) *GormPodRepository {
	return &GormPodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pod to the database. The insert races on the unique index
// over package_id; the loser of a concurrent create receives DuplicatePod.
// Requires gorm's TranslateError so the driver's duplicated-key error surfaces
// as gorm.ErrDuplicatedKey.
func (r *GormPodRepository) Add(ctx context.Context, aggregate *pod.Pod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.duplicateError(ctx, aggregate.PackageID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves document changes to an existing unlocked pod. The guard on
// is_locked keeps a concurrently locked pod immutable even if the caller read
// it as unlocked.
func (r *GormPodRepository) Update(ctx context.Context, aggregate *pod.Pod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PodDTO{}).
		Where("id = ? AND is_locked = false", dto.ID).
		Select("DocumentRef", "DocumentGeneratedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.lockedOrNotFound(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pod by ID.
func (r *GormPodRepository) Get(ctx context.Context, id kernel.UUID) (*pod.Pod, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pod", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPackageID retrieves the pod recorded for a package.
func (r *GormPodRepository) GetByPackageID(ctx context.Context, packageID kernel.UUID) (*pod.Pod, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dto PodDTO
	if err := r.db.WithContext(ctx).First(&dto, "package_id = ?", packageID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pod", packageID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByReference retrieves a pod by its human-facing reference.
func (r *GormPodRepository) GetByReference(ctx context.Context, reference kernel.PodReference) (*pod.Pod, error) {
	if err := reference.Validate(); err != nil {
		return nil, err
	}

	var dto PodDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pod", reference.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkLocked flips is_locked from false to true as a single guarded update.
// Exactly one of two concurrent calls sees a row change; the loser re-reads
// the row and receives AlreadyLocked.
func (r *GormPodRepository) MarkLocked(ctx context.Context, aggregate *pod.Pod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PodDTO{}).
		Where("id = ? AND is_locked = false", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"is_locked": true,
			"locked_at": aggregate.LockedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.lockedRace(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// NextReference allocates the next value of the global pod sequence. The
// single counter row is upserted with an increment and the new value read back
// in the same statement, so concurrent allocations never observe the same
// sequence number.
func (r *GormPodRepository) NextReference(ctx context.Context, year int) (kernel.PodReference, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO pod_counters (id, value) VALUES (1, 1)
		 ON CONFLICT (id) DO UPDATE SET value = pod_counters.value + 1
		 RETURNING value`,
	).Scan(&value).Error
	if err != nil {
		return kernel.PodReference{}, err
	}

	return kernel.NewPodReference(year, value)
}

func (r *GormPodRepository) duplicateError(ctx context.Context, packageID kernel.UUID) error {
	var existing PodDTO
	if err := r.db.WithContext(ctx).First(&existing, "package_id = ?", packageID.Bytes()).Error; err != nil {
		// The winning row may not be visible to this transaction yet.
		return errs.NewDuplicatePodError(packageID.String(), "")
	}
	return errs.NewDuplicatePodError(packageID.String(), existing.Reference)
}

func (r *GormPodRepository) lockedOrNotFound(ctx context.Context, aggregate *pod.Pod) error {
	var current PodDTO
	if err := r.db.WithContext(ctx).First(&current, "id = ?", aggregate.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("pod", aggregate.ID().String())
		}
		return err
	}

	lockedAt := current.LockedAt
	if lockedAt == nil {
		return gorm.ErrRecordNotFound
	}
	return errs.NewLockedError(current.Reference, *lockedAt)
}

func (r *GormPodRepository) lockedRace(ctx context.Context, aggregate *pod.Pod) error {
	var current PodDTO
	if err := r.db.WithContext(ctx).First(&current, "id = ?", aggregate.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("pod", aggregate.ID().String())
		}
		return err
	}

	lockedAt := aggregate.CompletedAt()
	if current.LockedAt != nil {
		lockedAt = *current.LockedAt
	}
	return errs.NewAlreadyLockedError(current.Reference, lockedAt)
}
