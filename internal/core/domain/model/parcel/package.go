package parcel

import (
	"errors"
	"net/mail"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is the aggregate root for a tracked parcel. It owns the status
// state machine and the correlated handling metadata (who picked up, received
// and collected the package, and when).
//
// Invariants:
//   - Must have a valid unique identifier and tracking reference
//   - Must have a valid receiver email and at least one item
//   - Status transitions follow the graph documented on Status
//   - Correlated metadata is set atomically with its transition: pickup sets
//     picked-up-by/at, receive sets received-by/at, collect sets
//     collected-by/at
//
// The lock-after-complete rule (no mutation once the package's pod is locked)
// spans two aggregates and is enforced at the operation boundary, which checks
// the pod's lock state before calling any method here.
type Package struct {
	id                 kernel.UUID
	trackingRef        kernel.TrackingRef
	receiverEmail      string
	notes              string
	purchaseOrder      string
	deliveryLocationID *kernel.UUID
	items              []Item
	status             Status

	createdBy kernel.UUID
	createdAt time.Time

	pickedUpBy  *kernel.UUID
	pickedUpAt  *time.Time
	receivedBy  *kernel.UUID
	receivedAt  *time.Time
	collectedBy *kernel.UUID
	collectedAt *time.Time

	isConstructed bool
}

// NewPackage creates a package in Pending status with validation. Notes,
// purchase order and delivery location are optional; receiver email and at
// least one item are required.
func NewPackage(
	id kernel.UUID,
	trackingRef kernel.TrackingRef,
	receiverEmail string,
	notes string,
	purchaseOrder string,
	deliveryLocationID *kernel.UUID,
	items []Item,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*Package, error) {
	pkg := &Package{
		notes:         notes,
		purchaseOrder: purchaseOrder,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setTrackingRef(trackingRef),
		pkg.setReceiverEmail(receiverEmail),
		pkg.setDeliveryLocationID(deliveryLocationID),
		pkg.setItems(items),
		pkg.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

// RestorePackage reconstructs a package from persistence, including its
// status and handling metadata. Validation rules match NewPackage, plus the
// restored status must be valid.
func RestorePackage(
	id kernel.UUID,
	trackingRef kernel.TrackingRef,
	receiverEmail string,
	notes string,
	purchaseOrder string,
	deliveryLocationID *kernel.UUID,
	items []Item,
	status Status,
	createdBy kernel.UUID,
	createdAt time.Time,
	pickedUpBy *kernel.UUID, pickedUpAt *time.Time,
	receivedBy *kernel.UUID, receivedAt *time.Time,
	collectedBy *kernel.UUID, collectedAt *time.Time,
) (*Package, error) {
	pkg, err := NewPackage(
		id, trackingRef, receiverEmail, notes, purchaseOrder, deliveryLocationID, items, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	pkg.status = status
	pkg.pickedUpBy, pkg.pickedUpAt = pickedUpBy, pickedUpAt
	pkg.receivedBy, pkg.receivedAt = receivedBy, receivedAt
	pkg.collectedBy, pkg.collectedAt = collectedBy, collectedAt
	return pkg, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by identifier.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// TrackingRef returns the human-facing tracking reference.
func (p *Package) TrackingRef() kernel.TrackingRef {
	return p.trackingRef
}

// ReceiverEmail returns the receiver's email address.
func (p *Package) ReceiverEmail() string {
	return p.receiverEmail
}

// Notes returns the free-text notes, possibly empty.
func (p *Package) Notes() string {
	return p.notes
}

// PurchaseOrder returns the purchase-order number, empty when not supplied.
func (p *Package) PurchaseOrder() string {
	return p.purchaseOrder
}

// DeliveryLocationID returns the delivery-location reference, nil when unset.
func (p *Package) DeliveryLocationID() *kernel.UUID {
	return p.deliveryLocationID
}

// Items returns the ordered item list.
func (p *Package) Items() []Item {
	items := make([]Item, len(p.items))
	copy(items, p.items)
	return items
}

// Status returns the current lifecycle status.
func (p *Package) Status() Status {
	return p.status
}

// CreatedBy returns the staff member who registered the package.
func (p *Package) CreatedBy() kernel.UUID {
	return p.createdBy
}

// CreatedAt returns the registration time.
func (p *Package) CreatedAt() time.Time {
	return p.createdAt
}

// PickedUpBy returns the driver who picked the package up, nil before pickup.
func (p *Package) PickedUpBy() *kernel.UUID { return p.pickedUpBy }

// PickedUpAt returns the pickup time, nil before pickup.
func (p *Package) PickedUpAt() *time.Time { return p.pickedUpAt }

// ReceivedBy returns the staff member who booked the package in, nil before receipt.
func (p *Package) ReceivedBy() *kernel.UUID { return p.receivedBy }

// ReceivedAt returns the receipt time, nil before receipt.
func (p *Package) ReceivedAt() *time.Time { return p.receivedAt }

// CollectedBy returns the staff member who completed collection, nil before collection.
func (p *Package) CollectedBy() *kernel.UUID { return p.collectedBy }

// CollectedAt returns the collection time, nil before collection.
func (p *Package) CollectedAt() *time.Time { return p.collectedAt }

// MarkNotified records a confirmed receiver notification. Only valid from
// Pending; the notification channel is advisory, so a failed confirmation
// simply leaves the package Pending.
func (p *Package) MarkNotified() error {
	newStatus, err := p.status.Notify()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Pickup moves the package into transit and records who picked it up and
// when, atomically with the status change.
func (p *Package) Pickup(by kernel.UUID, at time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Pickup()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.pickedUpBy = &by
	p.pickedUpAt = &at
	return nil
}

// Receive books the package in at the collection point and records who
// received it and when, atomically with the status change.
func (p *Package) Receive(by kernel.UUID, at time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Receive()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.receivedBy = &by
	p.receivedAt = &at
	return nil
}

// Collect completes the handover and records who collected it and when,
// atomically with the status change. Collected is terminal.
func (p *Package) Collect(by kernel.UUID, at time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Collect()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.collectedBy = &by
	p.collectedAt = &at
	return nil
}

// MarkReturned sends the package back to the sender. Returned is terminal.
func (p *Package) MarkReturned() error {
	newStatus, err := p.status.Return()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Apply dispatches a caller-requested transition to the matching method.
// The caller's role gate must already have been checked via
// Transition.Permits; Apply only enforces the state graph.
func (p *Package) Apply(t Transition, by kernel.UUID, at time.Time) error {
	switch t {
	case TransitionPickup:
		return p.Pickup(by, at)
	case TransitionReceive:
		return p.Receive(by, at)
	case TransitionCollect:
		return p.Collect(by, at)
	case TransitionReturn:
		return p.MarkReturned()
	case TransitionNotify:
		return p.MarkNotified()
	default:
		return t.Validate()
	}
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTrackingRef(trackingRef kernel.TrackingRef) error {
	if err := trackingRef.Validate(); err != nil {
		return err
	}
	p.trackingRef = trackingRef
	return nil
}

func (p *Package) setReceiverEmail(receiverEmail string) error {
	if receiverEmail == "" {
		return errs.NewValueIsRequiredError("receiverEmail")
	}
	if _, err := mail.ParseAddress(receiverEmail); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("receiverEmail", err)
	}
	p.receiverEmail = receiverEmail
	return nil
}

func (p *Package) setDeliveryLocationID(deliveryLocationID *kernel.UUID) error {
	if deliveryLocationID == nil {
		return nil
	}
	if err := deliveryLocationID.Validate(); err != nil {
		return err
	}
	p.deliveryLocationID = deliveryLocationID
	return nil
}

func (p *Package) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	p.items = make([]Item, len(items))
	copy(p.items, items)
	return nil
}

func (p *Package) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}
