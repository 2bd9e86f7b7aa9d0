package ports

import (
	"context"

	"deliveryledger/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for audit entries. The
// contract is append-only by construction: no update or delete method exists,
// and reads go through the query layer.
type AuditRepository interface {
	// Append persists an audit entry.
	Append(ctx context.Context, entry audit.Entry) error
}

// AuditAppender writes audit entries outside any caller transaction. Denial
// entries use it so that the record of a rejected attempt survives the
// rollback of the attempt itself.
type AuditAppender interface {
	// Append persists an audit entry immediately, independent of any open
	// unit of work.
	Append(ctx context.Context, entry audit.Entry) error
}
