package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/parcel"
	"deliveryledger/internal/pkg/guard"
)

var ErrTransitionPackageCommandIsNotConstructed = errors.New(
	"TransitionPackageCommand must be created via NewTransitionPackageCommand constructor",
)

// TransitionPackageCommand represents a request to move a package through its
// status state machine.
type TransitionPackageCommand struct { //nolint:recvcheck //using for validation
	packageID  kernel.UUID
	transition parcel.Transition
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionPackageCommand creates a command to apply a status transition.
func NewTransitionPackageCommand(
	packageID kernel.UUID, transition parcel.Transition, callerID kernel.UUID,
) (TransitionPackageCommand, error) {
	cmd := TransitionPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setTransition(transition),
		cmd.setCallerID(callerID),
	); err != nil {
		return TransitionPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionPackageCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPackageCommandIsNotConstructed)
}

// PackageID returns the package to transition.
func (c TransitionPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Transition returns the requested status change.
func (c TransitionPackageCommand) Transition() parcel.Transition {
	return c.transition
}

// CallerID returns the staff member issuing the request.
func (c TransitionPackageCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *TransitionPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *TransitionPackageCommand) setTransition(transition parcel.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}

func (c *TransitionPackageCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
