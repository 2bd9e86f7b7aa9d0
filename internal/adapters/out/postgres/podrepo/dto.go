// Package podrepo provides data transfer objects and mapping functions for
// proof-of-delivery persistence. The unique index on package_id is the atomic
// create-once primitive: concurrent creates for the same package resolve at
// the index, never by a check-then-insert.
package podrepo

import (
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/pod"

	"github.com/google/uuid"
)

// PodDTO represents the database structure for persisting pod aggregates.
type PodDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	PackageID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	SnapshotPackageRef    string `gorm:"type:varchar(32);not null"`
	SnapshotReceiverEmail string `gorm:"type:varchar(255);not null"`
	SnapshotStaffName     string `gorm:"type:varchar(255);not null"`
	SnapshotStaffEmail    string `gorm:"type:varchar(255);not null"`

	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	SignatureRef string    `gorm:"type:varchar(512);not null"`
	SignedAt     time.Time `gorm:"not null"`
	CompletedAt  time.Time `gorm:"not null"`

	DocumentRef         string `gorm:"type:varchar(512)"`
	DocumentGeneratedAt *time.Time

	IsLocked bool `gorm:"not null;default:false"`
	LockedAt *time.Time
}

// TableName specifies the database table name for pod entities.
func (PodDTO) TableName() string {
	return "pods"
}

// PodCounterDTO is the single-row table backing the global pod sequence. The
// row is upserted with an increment inside the createPod transaction; the
// value never resets, not even across year boundaries.
type PodCounterDTO struct {
	ID    int   `gorm:"primaryKey"`
	Value int64 `gorm:"not null"`
}

// TableName specifies the database table name for the pod sequence counter.
func (PodCounterDTO) TableName() string {
	return "pod_counters"
}

// fromDomain converts a pod domain aggregate to its database representation.
func fromDomain(p *pod.Pod) PodDTO {
	return PodDTO{
		ID:                    p.ID().Bytes(),
		Reference:             p.Reference().String(),
		PackageID:             p.PackageID().Bytes(),
		SnapshotPackageRef:    p.Snapshot().PackageRef.String(),
		SnapshotReceiverEmail: p.Snapshot().ReceiverEmail,
		SnapshotStaffName:     p.Snapshot().StaffName,
		SnapshotStaffEmail:    p.Snapshot().StaffEmail,
		CreatedBy:             p.CreatedBy().Bytes(),
		SignatureRef:          p.SignatureRef(),
		SignedAt:              p.SignedAt(),
		CompletedAt:           p.CompletedAt(),
		DocumentRef:           p.DocumentRef(),
		DocumentGeneratedAt:   p.DocumentGeneratedAt(),
		IsLocked:              p.IsLocked(),
		LockedAt:              p.LockedAt(),
	}
}

// toDomain converts a database DTO to a pod domain aggregate using RestorePod.
func toDomain(dto PodDTO) (*pod.Pod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reference, err := kernel.PodReferenceFromString(dto.Reference)
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	packageRef, err := kernel.TrackingRefFromString(dto.SnapshotPackageRef)
	if err != nil {
		return nil, err
	}

	return pod.RestorePod(
		id,
		reference,
		packageID,
		pod.Snapshot{
			PackageRef:    packageRef,
			ReceiverEmail: dto.SnapshotReceiverEmail,
			StaffName:     dto.SnapshotStaffName,
			StaffEmail:    dto.SnapshotStaffEmail,
		},
		createdBy,
		dto.SignatureRef,
		dto.SignedAt,
		dto.CompletedAt,
		dto.DocumentRef,
		dto.DocumentGeneratedAt,
		dto.IsLocked,
		dto.LockedAt,
	)
}
