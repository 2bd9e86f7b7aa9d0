package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPodQueryHandler retrieves a single pod read model from the database.
type GetPodQueryHandler struct {
	db *gorm.DB
}

// NewGetPodQueryHandler creates a handler for pod lookups.
func NewGetPodQueryHandler(db *gorm.DB) GetPodQueryHandler {
	return GetPodQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no pod matches
// the selector.
func (h GetPodQueryHandler) Handle(ctx context.Context, query GetPodQuery) (GetPodQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPodQueryResponse{}, err
	}

	var (
		selector string
		arg      any
	)
	switch {
	case query.podID != nil:
		selector, arg = "id = ?", query.podID.Bytes()
	case query.packageID != nil:
		selector, arg = "package_id = ?", query.packageID.Bytes()
	default:
		selector, arg = "reference = ?", query.reference
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			package_id,
			snapshot_package_ref,
			snapshot_receiver_email,
			snapshot_staff_name,
			snapshot_staff_email,
			created_by,
			signature_ref,
			signed_at,
			completed_at,
			document_ref,
			document_generated_at,
			is_locked,
			locked_at
		FROM pods
		WHERE `+selector, arg).Row()

	var (
		resp      GetPodQueryResponse
		id        uuid.UUID
		packageID uuid.UUID
		createdBy uuid.UUID
	)

	err := row.Scan(
		&id,
		&resp.Reference,
		&packageID,
		&resp.PackageRef,
		&resp.ReceiverEmail,
		&resp.StaffName,
		&resp.StaffEmail,
		&createdBy,
		&resp.SignatureRef,
		&resp.SignedAt,
		&resp.CompletedAt,
		&resp.DocumentRef,
		&resp.DocumentGeneratedAt,
		&resp.IsLocked,
		&resp.LockedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPodQueryResponse{}, errs.NewObjectNotFoundError("pod", arg)
		}
		return GetPodQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPodQueryResponse{}, err
	}
	resp.PackageID, err = kernel.UUIDFromBytes(packageID[:])
	if err != nil {
		return GetPodQueryResponse{}, err
	}
	resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:])
	if err != nil {
		return GetPodQueryResponse{}, err
	}

	return resp, nil
}
