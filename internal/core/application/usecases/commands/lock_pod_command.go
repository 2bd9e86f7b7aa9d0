package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/guard"
)

var ErrLockPodCommandIsNotConstructed = errors.New(
	"LockPodCommand must be created via NewLockPodCommand constructor",
)

// LockPodCommand represents a request to permanently lock a proof-of-delivery
// record.
type LockPodCommand struct { //nolint:recvcheck //using for validation
	podID    kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLockPodCommand creates a command to lock a pod.
func NewLockPodCommand(podID kernel.UUID, callerID kernel.UUID) (LockPodCommand, error) {
	cmd := LockPodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPodID(podID),
		cmd.setCallerID(callerID),
	); err != nil {
		return LockPodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LockPodCommand) Validate() error {
	return c.guard.Validate(ErrLockPodCommandIsNotConstructed)
}

// PodID returns the pod to lock.
func (c LockPodCommand) PodID() kernel.UUID {
	return c.podID
}

// CallerID returns the staff member issuing the request.
func (c LockPodCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *LockPodCommand) setPodID(podID kernel.UUID) error {
	if err := podID.Validate(); err != nil {
		return err
	}

	c.podID = podID
	return nil
}

func (c *LockPodCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
