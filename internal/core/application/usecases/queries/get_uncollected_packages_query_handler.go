package queries

import (
	"context"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncollectedPackagesQueryHandler retrieves packages that have not reached
// a terminal status. Collected and Returned rows are excluded.
type GetUncollectedPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetUncollectedPackagesQueryHandler creates a handler for in-flight
// package queries.
func NewGetUncollectedPackagesQueryHandler(db *gorm.DB) GetUncollectedPackagesQueryHandler {
	return GetUncollectedPackagesQueryHandler{db: db}
}

// Handle executes the query. Results come back oldest first so the longest
// waiting packages lead the list.
func (h GetUncollectedPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetUncollectedPackagesQuery,
) ([]GetUncollectedPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_ref,
			status,
			receiver_email,
			created_at
		FROM packages
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, int(parcel.Collected), int(parcel.Returned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]GetUncollectedPackagesQueryResponse, 0)
	for rows.Next() {
		var (
			resp   GetUncollectedPackagesQueryResponse
			id     uuid.UUID
			status int
		)

		err = rows.Scan(&id, &resp.TrackingRef, &status, &resp.ReceiverEmail, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.Status = parcel.Status(status).String()

		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
