package commands

import (
	"errors"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var ErrCreatePodCommandIsNotConstructed = errors.New(
	"CreatePodCommand must be created via NewCreatePodCommand constructor",
)

// CreatePodCommand represents a request to record proof of delivery for a
// package. The pod reference is not part of the command: it is allocated from
// the global sequence during handling.
type CreatePodCommand struct { //nolint:recvcheck //using for validation
	podID        kernel.UUID
	packageID    kernel.UUID
	signatureRef string
	signedAt     time.Time
	callerID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePodCommand creates a command to record proof of delivery.
func NewCreatePodCommand(
	podID kernel.UUID,
	packageID kernel.UUID,
	signatureRef string,
	signedAt time.Time,
	callerID kernel.UUID,
) (CreatePodCommand, error) {
	cmd := CreatePodCommand{
		signedAt: signedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPodID(podID),
		cmd.setPackageID(packageID),
		cmd.setSignatureRef(signatureRef),
		cmd.setCallerID(callerID),
	); err != nil {
		return CreatePodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePodCommand) Validate() error {
	return c.guard.Validate(ErrCreatePodCommandIsNotConstructed)
}

// PodID returns the identifier assigned to the new pod.
func (c CreatePodCommand) PodID() kernel.UUID {
	return c.podID
}

// PackageID returns the package the proof of delivery confirms.
func (c CreatePodCommand) PackageID() kernel.UUID {
	return c.packageID
}

// SignatureRef returns the stored reference to the signature asset.
func (c CreatePodCommand) SignatureRef() string {
	return c.signatureRef
}

// SignedAt returns the moment the receiver signed.
func (c CreatePodCommand) SignedAt() time.Time {
	return c.signedAt
}

// CallerID returns the staff member completing the proof of delivery.
func (c CreatePodCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CreatePodCommand) setPodID(podID kernel.UUID) error {
	if err := podID.Validate(); err != nil {
		return err
	}

	c.podID = podID
	return nil
}

func (c *CreatePodCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *CreatePodCommand) setSignatureRef(signatureRef string) error {
	if signatureRef == "" {
		return errs.NewValueIsRequiredError("signatureRef")
	}

	c.signatureRef = signatureRef
	return nil
}

func (c *CreatePodCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
