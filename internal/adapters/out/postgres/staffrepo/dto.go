// Package staffrepo provides data transfer objects and mapping functions for
// staff persistence. Staff rows are never deleted; deactivation flips the
// is_active flag so historical audit entries stay attributable.
package staffrepo

import (
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO represents the database structure for persisting staff aggregates.
type StaffDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Email             string    `gorm:"type:varchar(255);not null"`
	Role              string    `gorm:"type:varchar(32);not null"`
	IsActive          bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain aggregate to its database representation.
func fromDomain(member *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:                member.ID().Bytes(),
		ExternalAccountID: member.ExternalAccountID(),
		Name:              member.Name(),
		Email:             member.Email(),
		Role:              member.Role().String(),
		IsActive:          member.IsActive(),
	}
}

// toDomain converts a database DTO to a staff domain aggregate using RestoreStaff.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.ExternalAccountID, dto.Name, dto.Email, role, dto.IsActive)
}
