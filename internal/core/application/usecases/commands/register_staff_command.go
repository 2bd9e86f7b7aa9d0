package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var ErrRegisterStaffCommandIsNotConstructed = errors.New(
	"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
)

// RegisterStaffCommand represents an admin request to bind a new staff
// profile to an identity-provider account.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	staffID           kernel.UUID
	externalAccountID string
	name              string
	email             string
	role              staff.Role
	callerID          kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to register a staff profile.
func NewRegisterStaffCommand(
	staffID kernel.UUID,
	externalAccountID string,
	name string,
	email string,
	role staff.Role,
	callerID kernel.UUID,
) (RegisterStaffCommand, error) {
	cmd := RegisterStaffCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setExternalAccountID(externalAccountID),
		cmd.setRole(role),
		cmd.setCallerID(callerID),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// StaffID returns the identifier assigned to the new profile.
func (c RegisterStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// ExternalAccountID returns the identity-provider account to bind.
func (c RegisterStaffCommand) ExternalAccountID() string {
	return c.externalAccountID
}

// Name returns the staff member's display name.
func (c RegisterStaffCommand) Name() string {
	return c.name
}

// Email returns the staff member's email address.
func (c RegisterStaffCommand) Email() string {
	return c.email
}

// Role returns the requested authorization role.
func (c RegisterStaffCommand) Role() staff.Role {
	return c.role
}

// CallerID returns the admin issuing the request.
func (c RegisterStaffCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *RegisterStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *RegisterStaffCommand) setExternalAccountID(externalAccountID string) error {
	if externalAccountID == "" {
		return errs.NewValueIsRequiredError("externalAccountID")
	}

	c.externalAccountID = externalAccountID
	return nil
}

func (c *RegisterStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterStaffCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
