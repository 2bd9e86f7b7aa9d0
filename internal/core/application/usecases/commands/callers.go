package commands

import (
	"context"
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/core/ports"
)

// resolveActiveCaller loads the caller's staff profile and rejects
// soft-disabled profiles. Deactivated callers may still authenticate at the
// identity provider, so every command re-checks the flag here.
func resolveActiveCaller(ctx context.Context, repo ports.StaffRepository, callerID kernel.UUID) (*staff.Staff, error) {
	caller, err := repo.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if err = caller.EnsureActive(); err != nil {
		return nil, err
	}

	return caller, nil
}

// appendDenial records a compliance denial through the out-of-transaction
// appender, so the entry survives the rollback of the denied attempt. The
// denial error is always returned; an append failure rides along joined.
func appendDenial(
	ctx context.Context,
	appender ports.AuditAppender,
	action audit.Action,
	entityType string,
	entityID string,
	performedBy kernel.UUID,
	denial error,
) error {
	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		action,
		entityType,
		entityID,
		performedBy,
		map[string]any{"reason": denial.Error()},
		time.Now(),
	)
	if err != nil {
		return errors.Join(denial, err)
	}

	if err = appender.Append(ctx, entry); err != nil {
		return errors.Join(denial, err)
	}

	return denial
}
