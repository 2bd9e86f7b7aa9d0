package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/guard"
)

var ErrDeactivateStaffCommandIsNotConstructed = errors.New(
	"DeactivateStaffCommand must be created via NewDeactivateStaffCommand constructor",
)

// DeactivateStaffCommand represents an admin request to soft-disable a staff
// profile. The record is never deleted, so audit history stays attributable.
type DeactivateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateStaffCommand creates a command to deactivate a staff profile.
func NewDeactivateStaffCommand(staffID, callerID kernel.UUID) (DeactivateStaffCommand, error) {
	cmd := DeactivateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setCallerID(callerID),
	); err != nil {
		return DeactivateStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateStaffCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateStaffCommandIsNotConstructed)
}

// StaffID returns the profile to deactivate.
func (c DeactivateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// CallerID returns the admin issuing the request.
func (c DeactivateStaffCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *DeactivateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *DeactivateStaffCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
