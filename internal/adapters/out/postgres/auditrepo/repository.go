package auditrepo

import (
	"context"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM, bound to a unit
// of work's transaction. Successful mutations append their entries here so
// the entry commits or rolls back together with the mutation.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append saves an audit entry to the database.
func (r *GormAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GormAuditAppender implements AuditAppender on the root database connection,
// outside any unit of work. Denial entries go through here so the record of a
// rejected attempt survives the rollback of the attempt itself.
type GormAuditAppender struct {
	db *gorm.DB
}

// NewGormAuditAppender creates an appender bound to the root connection.
func NewGormAuditAppender(db *gorm.DB) *GormAuditAppender {
	return &GormAuditAppender{db: db}
}

// Append saves an audit entry immediately, independent of any open transaction.
func (a *GormAuditAppender) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return a.db.WithContext(ctx).Create(&dto).Error
}
