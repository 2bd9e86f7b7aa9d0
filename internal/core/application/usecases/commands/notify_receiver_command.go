package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/guard"
)

var ErrNotifyReceiverCommandIsNotConstructed = errors.New(
	"NotifyReceiverCommand must be created via NewNotifyReceiverCommand constructor",
)

// NotifyReceiverCommand represents a request to re-attempt the advisory
// arrival notification for a still-Pending package. Issued by warehouse staff
// or by the redelivery job acting on their behalf.
type NotifyReceiverCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotifyReceiverCommand creates a command to re-attempt a notification.
func NewNotifyReceiverCommand(packageID, callerID kernel.UUID) (NotifyReceiverCommand, error) {
	cmd := NotifyReceiverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setCallerID(callerID),
	); err != nil {
		return NotifyReceiverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyReceiverCommand) Validate() error {
	return c.guard.Validate(ErrNotifyReceiverCommandIsNotConstructed)
}

// PackageID returns the package whose receiver should be notified.
func (c NotifyReceiverCommand) PackageID() kernel.UUID {
	return c.packageID
}

// CallerID returns the staff member the attempt is attributed to.
func (c NotifyReceiverCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *NotifyReceiverCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *NotifyReceiverCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
