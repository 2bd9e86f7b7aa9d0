package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackageQueryHandler retrieves a single package read model from the
// database. The pod reference comes from a left join so packages without a
// proof of delivery resolve with an empty reference.
type GetPackageQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageQueryHandler creates a handler for package lookups.
func NewGetPackageQueryHandler(db *gorm.DB) GetPackageQueryHandler {
	return GetPackageQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no package
// matches the selector.
func (h GetPackageQueryHandler) Handle(
	ctx context.Context,
	query GetPackageQuery,
) (GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageQueryResponse{}, err
	}

	selector := "packages.id = ?"
	arg := any(nil)
	if query.packageID != nil {
		arg = query.packageID.Bytes()
	} else {
		selector = "packages.tracking_ref = ?"
		arg = query.trackingRef
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			packages.id,
			packages.tracking_ref,
			packages.status,
			packages.receiver_email,
			packages.notes,
			packages.purchase_order,
			packages.created_by,
			packages.created_at,
			packages.picked_up_at,
			packages.received_at,
			packages.collected_at,
			pods.reference
		FROM packages
		LEFT JOIN pods ON pods.package_id = packages.id
		WHERE `+selector, arg).Row()

	var (
		resp         GetPackageQueryResponse
		id           uuid.UUID
		status       int
		createdBy    uuid.UUID
		podReference sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.TrackingRef,
		&status,
		&resp.ReceiverEmail,
		&resp.Notes,
		&resp.PurchaseOrder,
		&createdBy,
		&resp.CreatedAt,
		&resp.PickedUpAt,
		&resp.ReceivedAt,
		&resp.CollectedAt,
		&podReference,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPackageQueryResponse{}, errs.NewObjectNotFoundError("package", arg)
		}
		return GetPackageQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return GetPackageQueryResponse{}, err
	}
	resp.Status = parcel.Status(status).String()
	if podReference.Valid {
		resp.PodReference = podReference.String
	}

	resp.Items, err = h.loadItems(ctx, id)
	if err != nil {
		return GetPackageQueryResponse{}, err
	}

	return resp, nil
}

func (h GetPackageQueryHandler) loadItems(ctx context.Context, packageID uuid.UUID) ([]PackageItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			quantity,
			description
		FROM package_items
		WHERE package_id = ?
		ORDER BY ordinal
	`, packageID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]PackageItemResponse, 0)
	for rows.Next() {
		var item PackageItemResponse
		if err = rows.Scan(&item.Quantity, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
