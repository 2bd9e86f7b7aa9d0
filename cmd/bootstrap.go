package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deliveryledger/internal/core/domain/model/audit"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"
)

// EnsureBootstrapAdmin registers the configured admin account if no staff
// member carries it yet. Every other staff registration requires an admin
// caller, so the first admin has to enter outside the normal flow. The check
// and insert run in one transaction and the call is safe to repeat on every
// start.
func (c *CompositionRoot) EnsureBootstrapAdmin(ctx context.Context) error {
	if c.config.BootstrapAdminAccountID == "" {
		return nil
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.StaffRepository().GetByExternalAccountID(ctx, c.config.BootstrapAdminAccountID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("bootstrap admin lookup: %w", err)
	}

	admin, err := staff.NewStaff(
		kernel.NewUUID(),
		c.config.BootstrapAdminAccountID,
		c.config.BootstrapAdminName,
		c.config.BootstrapAdminEmail,
		staff.Admin,
	)
	if err != nil {
		return fmt.Errorf("bootstrap admin construction: %w", err)
	}

	if err = uow.StaffRepository().Add(ctx, admin); err != nil {
		return fmt.Errorf("bootstrap admin insert: %w", err)
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		audit.ActionStaffRegistered,
		audit.EntityStaff,
		admin.ID().String(),
		admin.ID(),
		map[string]any{"bootstrap": true},
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "bootstrap admin registered",
		"externalAccountID", c.config.BootstrapAdminAccountID)
	return uow.Commit(ctx)
}
