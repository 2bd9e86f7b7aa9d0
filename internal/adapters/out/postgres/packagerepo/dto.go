// Package packagerepo provides data transfer objects and mapping functions for package persistence.
// This package implements the repository pattern for the package domain aggregate, handling
// the conversion between domain entities and database representations.
package packagerepo

import (
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package aggregates.
// The tracking reference carries a unique index so reference generation can
// detect collisions at the point of write.
type PackageDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingRef        string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	ReceiverEmail      string     `gorm:"type:varchar(255);not null"`
	Notes              string     `gorm:"type:text"`
	PurchaseOrder      string     `gorm:"type:varchar(64)"`
	DeliveryLocationID *uuid.UUID `gorm:"type:uuid"`
	Items              []ItemDTO  `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Status             int        `gorm:"type:int;not null;index"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`

	PickedUpBy  *uuid.UUID `gorm:"type:uuid"`
	PickedUpAt  *time.Time
	ReceivedBy  *uuid.UUID `gorm:"type:uuid"`
	ReceivedAt  *time.Time
	CollectedBy *uuid.UUID `gorm:"type:uuid"`
	CollectedAt *time.Time
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// ItemDTO represents one item line on a package. Ordinal preserves the order
// the items were registered in.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Ordinal     int       `gorm:"type:int;not null"`
	Quantity    int       `gorm:"type:int;not null"`
	Description string    `gorm:"type:varchar(512);not null"`
}

// TableName specifies the database table name for package item lines.
func (ItemDTO) TableName() string {
	return "package_items"
}

// fromDomain converts a package domain aggregate to its database representation.
func fromDomain(pkg *parcel.Package) PackageDTO {
	packageID := pkg.ID().Bytes()

	items := make([]ItemDTO, 0, len(pkg.Items()))
	for i, item := range pkg.Items() {
		items = append(items, ItemDTO{
			ID:          uuid.New(),
			PackageID:   packageID,
			Ordinal:     i,
			Quantity:    item.Quantity(),
			Description: item.Description(),
		})
	}

	return PackageDTO{
		ID:                 packageID,
		TrackingRef:        pkg.TrackingRef().String(),
		ReceiverEmail:      pkg.ReceiverEmail(),
		Notes:              pkg.Notes(),
		PurchaseOrder:      pkg.PurchaseOrder(),
		DeliveryLocationID: optionalUUIDFromDomain(pkg.DeliveryLocationID()),
		Items:              items,
		Status:             int(pkg.Status()),
		CreatedBy:          pkg.CreatedBy().Bytes(),
		CreatedAt:          pkg.CreatedAt(),
		PickedUpBy:         optionalUUIDFromDomain(pkg.PickedUpBy()),
		PickedUpAt:         pkg.PickedUpAt(),
		ReceivedBy:         optionalUUIDFromDomain(pkg.ReceivedBy()),
		ReceivedAt:         pkg.ReceivedAt(),
		CollectedBy:        optionalUUIDFromDomain(pkg.CollectedBy()),
		CollectedAt:        pkg.CollectedAt(),
	}
}

// toDomain converts a database DTO to a package domain aggregate.
// Reconstructs the complete aggregate including status and handling metadata
// using RestorePackage.
func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingRef, err := kernel.TrackingRefFromString(dto.TrackingRef)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	deliveryLocationID, err := optionalUUIDToDomain(dto.DeliveryLocationID)
	if err != nil {
		return nil, err
	}

	items := make([]parcel.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := parcel.NewItem(itemDto.Quantity, itemDto.Description)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	pickedUpBy, err := optionalUUIDToDomain(dto.PickedUpBy)
	if err != nil {
		return nil, err
	}
	receivedBy, err := optionalUUIDToDomain(dto.ReceivedBy)
	if err != nil {
		return nil, err
	}
	collectedBy, err := optionalUUIDToDomain(dto.CollectedBy)
	if err != nil {
		return nil, err
	}

	return parcel.RestorePackage(
		id,
		trackingRef,
		dto.ReceiverEmail,
		dto.Notes,
		dto.PurchaseOrder,
		deliveryLocationID,
		items,
		parcel.Status(dto.Status),
		createdBy,
		dto.CreatedAt,
		pickedUpBy, dto.PickedUpAt,
		receivedBy, dto.ReceivedAt,
		collectedBy, dto.CollectedAt,
	)
}

func optionalUUIDFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUIDToDomain(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	domainID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &domainID, nil
}
