package queries

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrGetAuditTrailQueryIsNotConstructed = errors.New(
		"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
	)
)

const (
	defaultAuditTrailLimit = 50
	maxAuditTrailLimit     = 500
)

// AuditTrailFilter narrows the audit trail. Zero-valued fields are ignored;
// From and To form a closed range on the entry timestamp.
type AuditTrailFilter struct {
	EntityType  string
	EntityID    string
	PerformedBy *kernel.UUID
	Action      string
	From        *time.Time
	To          *time.Time
}

// GetAuditTrailQuery retrieves audit entries newest first with offset/limit
// pagination.
//
// Example:
//
//	query, err := NewGetAuditTrailQuery(AuditTrailFilter{
//	    EntityType: "package",
//	    EntityID:   pkgID.String(),
//	}, 0, 50)
type GetAuditTrailQuery struct {
	guard guard.ConstructorGuard

	filter AuditTrailFilter
	offset int
	limit  int
}

// NewGetAuditTrailQuery creates an audit trail query. A zero limit falls back
// to the default page size.
func NewGetAuditTrailQuery(filter AuditTrailFilter, offset, limit int) (GetAuditTrailQuery, error) {
	if offset < 0 {
		return GetAuditTrailQuery{}, errs.NewValueIsInvalidError("offset")
	}
	if limit < 0 || limit > maxAuditTrailLimit {
		return GetAuditTrailQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxAuditTrailLimit)
	}
	if limit == 0 {
		limit = defaultAuditTrailLimit
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return GetAuditTrailQuery{}, errs.NewValueIsInvalidError("filter.To")
	}

	return GetAuditTrailQuery{
		guard:  guard.NewConstructorGuard(),
		filter: filter,
		offset: offset,
		limit:  limit,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// GetAuditTrailQueryResponse is one immutable audit entry.
type GetAuditTrailQueryResponse struct {
	ID          kernel.UUID
	Action      string
	EntityType  string
	EntityID    string
	PerformedBy kernel.UUID
	Metadata    map[string]any
	CreatedAt   time.Time
}
