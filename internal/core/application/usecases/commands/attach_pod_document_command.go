package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var ErrAttachPodDocumentCommandIsNotConstructed = errors.New(
	"AttachPodDocumentCommand must be created via NewAttachPodDocumentCommand constructor",
)

// AttachPodDocumentCommand represents a request to attach a rendered document
// to an unlocked proof-of-delivery record.
type AttachPodDocumentCommand struct { //nolint:recvcheck //using for validation
	podID       kernel.UUID
	documentRef string
	callerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachPodDocumentCommand creates a command to attach a pod document.
func NewAttachPodDocumentCommand(
	podID kernel.UUID, documentRef string, callerID kernel.UUID,
) (AttachPodDocumentCommand, error) {
	cmd := AttachPodDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPodID(podID),
		cmd.setDocumentRef(documentRef),
		cmd.setCallerID(callerID),
	); err != nil {
		return AttachPodDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPodDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachPodDocumentCommandIsNotConstructed)
}

// PodID returns the pod to attach the document to.
func (c AttachPodDocumentCommand) PodID() kernel.UUID {
	return c.podID
}

// DocumentRef returns the stored reference to the document asset.
func (c AttachPodDocumentCommand) DocumentRef() string {
	return c.documentRef
}

// CallerID returns the staff member issuing the request.
func (c AttachPodDocumentCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AttachPodDocumentCommand) setPodID(podID kernel.UUID) error {
	if err := podID.Validate(); err != nil {
		return err
	}

	c.podID = podID
	return nil
}

func (c *AttachPodDocumentCommand) setDocumentRef(documentRef string) error {
	if documentRef == "" {
		return errs.NewValueIsRequiredError("documentRef")
	}

	c.documentRef = documentRef
	return nil
}

func (c *AttachPodDocumentCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
