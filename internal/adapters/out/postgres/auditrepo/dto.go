// Package auditrepo provides data transfer objects and mapping functions for
// audit-entry persistence. The table is append-only by contract: the
// repository exposes no update or delete, and reads go through the query layer.
package auditrepo

import (
	"encoding/json"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntryDTO represents the database structure for persisting audit entries.
// Metadata is an open jsonb document, not a fixed column set, so entries
// tolerate large structured payloads without schema changes.
type EntryDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Action      string         `gorm:"type:varchar(64);not null;index"`
	EntityType  string         `gorm:"type:varchar(32);not null;index:idx_audit_entity"`
	EntityID    string         `gorm:"type:varchar(64);not null;index:idx_audit_entity"`
	PerformedBy uuid.UUID      `gorm:"type:uuid;not null;index"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"not null;index"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry audit.Entry) (EntryDTO, error) {
	var metadata datatypes.JSON
	if m := entry.Metadata(); m != nil {
		raw, err := json.Marshal(m)
		if err != nil {
			return EntryDTO{}, err
		}
		metadata = datatypes.JSON(raw)
	}

	return EntryDTO{
		ID:          entry.ID().Bytes(),
		Action:      string(entry.Action()),
		EntityType:  entry.EntityType(),
		EntityID:    entry.EntityID(),
		PerformedBy: entry.PerformedBy().Bytes(),
		Metadata:    metadata,
		CreatedAt:   entry.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an audit entry using RestoreEntry.
func toDomain(dto EntryDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	performedBy, err := kernel.UUIDFromBytes(dto.PerformedBy[:])
	if err != nil {
		return audit.Entry{}, err
	}

	var metadata map[string]any
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &metadata); err != nil {
			return audit.Entry{}, err
		}
	}

	return audit.RestoreEntry(
		id,
		audit.Action(dto.Action),
		dto.EntityType,
		dto.EntityID,
		performedBy,
		metadata,
		dto.CreatedAt,
	)
}
