package queries

import (
	"context"
	"encoding/json"
	"strings"

	"deliveryledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler retrieves audit entries from the database. The
// trail reads straight from the table; nothing in the system updates or
// deletes rows once appended.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first; entries sharing
// a timestamp are ordered by id for a stable page boundary.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	filter := query.filter
	if filter.EntityType != "" {
		conditions = append(conditions, "entity_type = ?")
		args = append(args, filter.EntityType)
	}
	if filter.EntityID != "" {
		conditions = append(conditions, "entity_id = ?")
		args = append(args, filter.EntityID)
	}
	if filter.PerformedBy != nil {
		conditions = append(conditions, "performed_by = ?")
		args = append(args, filter.PerformedBy.Bytes())
	}
	if filter.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.From != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filter.To)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, query.limit, query.offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			entity_type,
			entity_id,
			performed_by,
			metadata,
			created_at
		FROM audit_entries
		`+where+`
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetAuditTrailQueryResponse, 0)
	for rows.Next() {
		var (
			entry       GetAuditTrailQueryResponse
			id          uuid.UUID
			performedBy uuid.UUID
			metadata    []byte
		)

		err = rows.Scan(
			&id,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&performedBy,
			&metadata,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.PerformedBy, err = kernel.UUIDFromBytes(performedBy[:])
		if err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err = json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
