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

// ResolveCallerQueryHandler resolves an external account id to a staff member.
type ResolveCallerQueryHandler struct {
	db *gorm.DB
}

// NewResolveCallerQueryHandler creates a handler for caller resolution.
func NewResolveCallerQueryHandler(db *gorm.DB) ResolveCallerQueryHandler {
	return ResolveCallerQueryHandler{db: db}
}

// Handle executes the lookup. Fails with ObjectNotFound when no staff member
// carries the external account id. Deactivated members still resolve; callers
// decide what an inactive account may do.
func (h ResolveCallerQueryHandler) Handle(
	ctx context.Context,
	query ResolveCallerQuery,
) (ResolveCallerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveCallerQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			role,
			is_active
		FROM staff
		WHERE external_account_id = ?
	`, query.externalAccountID).Row()

	var (
		resp ResolveCallerQueryResponse
		id   uuid.UUID
	)

	err := row.Scan(&id, &resp.Role, &resp.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResolveCallerQueryResponse{}, errs.NewObjectNotFoundError("staff", query.externalAccountID)
		}
		return ResolveCallerQueryResponse{}, err
	}

	resp.StaffID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ResolveCallerQueryResponse{}, err
	}

	return resp, nil
}
