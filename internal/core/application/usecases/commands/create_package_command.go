package commands

import (
	"errors"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
	"deliveryledger/internal/pkg/guard"
)

var (
	ErrCreatePackageCommandIsNotConstructed = errors.New(
		"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemInput carries one item line of a package registration request.
type ItemInput struct {
	Quantity    int
	Description string
}

// CreatePackageCommand represents a request to register a new package.
// The tracking reference is not part of the command: it is generated during
// handling and retried on collision.
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID          kernel.UUID
	receiverEmail      string
	notes              string
	purchaseOrder      string
	deliveryLocationID *kernel.UUID
	items              []ItemInput
	callerID           kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// Receiver email and at least one item are required; notes, purchase order and
// delivery location are optional. Item content is validated by the aggregate
// during handling.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	receiverEmail string,
	notes string,
	purchaseOrder string,
	deliveryLocationID *kernel.UUID,
	items []ItemInput,
	callerID kernel.UUID,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		notes:              notes,
		purchaseOrder:      purchaseOrder,
		deliveryLocationID: deliveryLocationID,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setReceiverEmail(receiverEmail),
		cmd.setItems(items),
		cmd.setCallerID(callerID),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier assigned to the new package.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// ReceiverEmail returns the receiver's email address.
func (c CreatePackageCommand) ReceiverEmail() string {
	return c.receiverEmail
}

// Notes returns the free-text notes, possibly empty.
func (c CreatePackageCommand) Notes() string {
	return c.notes
}

// PurchaseOrder returns the purchase-order number, possibly empty.
func (c CreatePackageCommand) PurchaseOrder() string {
	return c.purchaseOrder
}

// DeliveryLocationID returns the delivery-location reference, nil when unset.
func (c CreatePackageCommand) DeliveryLocationID() *kernel.UUID {
	return c.deliveryLocationID
}

// Items returns the requested item lines.
func (c CreatePackageCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// CallerID returns the staff member issuing the request.
func (c CreatePackageCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setReceiverEmail(receiverEmail string) error {
	if receiverEmail == "" {
		return errs.NewValueIsRequiredError("receiverEmail")
	}

	c.receiverEmail = receiverEmail
	return nil
}

func (c *CreatePackageCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreatePackageCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
