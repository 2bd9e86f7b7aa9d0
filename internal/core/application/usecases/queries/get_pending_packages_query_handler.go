package queries

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingPackagesQueryHandler retrieves packages whose arrival notification
// has not been confirmed yet.
type GetPendingPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPackagesQueryHandler creates a handler for pending package queries.
func NewGetPendingPackagesQueryHandler(db *gorm.DB) GetPendingPackagesQueryHandler {
	return GetPendingPackagesQueryHandler{db: db}
}

// Handle executes the query, oldest packages first.
func (h GetPendingPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPackagesQuery,
) ([]GetPendingPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			created_at
		FROM packages
		WHERE status = ?
		ORDER BY created_at, id
	`, int(parcel.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]GetPendingPackagesQueryResponse, 0)
	for rows.Next() {
		var (
			resp      GetPendingPackagesQueryResponse
			id        uuid.UUID
			createdBy uuid.UUID
		)

		if err = rows.Scan(&id, &createdBy, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}

		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
