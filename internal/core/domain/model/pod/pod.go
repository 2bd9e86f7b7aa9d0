package pod

import (
	"errors"
	"net/mail"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"
)

// ErrPodIsNotConstructed is returned when a Pod instance was not created
// through NewPod or RestorePod.
var ErrPodIsNotConstructed = errors.New("Pod must be created via NewPod constructor")

// Snapshot holds the values copied from the package and the creating staff
// member at pod creation time. These are deliberately not live references: a
// later rename of staff or package fields must not retroactively change a
// historical pod.
type Snapshot struct {
	PackageRef    kernel.TrackingRef
	ReceiverEmail string
	StaffName     string
	StaffEmail    string
}

// Validate checks the snapshot carries every required field.
func (s Snapshot) Validate() error {
	if err := s.PackageRef.Validate(); err != nil {
		return err
	}
	if s.ReceiverEmail == "" {
		return errs.NewValueIsRequiredError("snapshot.receiverEmail")
	}
	if _, err := mail.ParseAddress(s.ReceiverEmail); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("snapshot.receiverEmail", err)
	}
	if s.StaffName == "" {
		return errs.NewValueIsRequiredError("snapshot.staffName")
	}
	if s.StaffEmail == "" {
		return errs.NewValueIsRequiredError("snapshot.staffEmail")
	}
	return nil
}

// Pod is the aggregate root for a proof-of-delivery record.
//
// Invariants:
//   - Exactly one pod exists per package (enforced atomically at the write
//     boundary, re-checked here only as far as the aggregate can see)
//   - Created unlocked; a document may be attached while unlocked; locked
//     exactly once; once locked no field ever changes and the record is never
//     deleted, unconditionally and with no admin bypass
//   - Snapshot fields are frozen at creation time
type Pod struct {
	id        kernel.UUID
	reference kernel.PodReference
	packageID kernel.UUID
	snapshot  Snapshot

	createdBy    kernel.UUID
	signatureRef string
	signedAt     time.Time
	completedAt  time.Time

	documentRef         string
	documentGeneratedAt *time.Time

	isLocked bool
	lockedAt *time.Time

	isConstructed bool
}

// NewPod creates an unlocked pod with validation. The snapshot must carry the
// package and staff values as they are at this instant.
func NewPod(
	id kernel.UUID,
	reference kernel.PodReference,
	packageID kernel.UUID,
	snapshot Snapshot,
	createdBy kernel.UUID,
	signatureRef string,
	signedAt time.Time,
	completedAt time.Time,
) (*Pod, error) {
	p := &Pod{
		signedAt:      signedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setPackageID(packageID),
		p.setSnapshot(snapshot),
		p.setCreatedBy(createdBy),
		p.setSignatureRef(signatureRef),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePod reconstructs a pod from persistence, including document and lock
// state. Validation rules match NewPod.
func RestorePod(
	id kernel.UUID,
	reference kernel.PodReference,
	packageID kernel.UUID,
	snapshot Snapshot,
	createdBy kernel.UUID,
	signatureRef string,
	signedAt time.Time,
	completedAt time.Time,
	documentRef string,
	documentGeneratedAt *time.Time,
	isLocked bool,
	lockedAt *time.Time,
) (*Pod, error) {
	p, err := NewPod(id, reference, packageID, snapshot, createdBy, signatureRef, signedAt, completedAt)
	if err != nil {
		return nil, err
	}

	if isLocked && lockedAt == nil {
		return nil, errs.NewValueIsRequiredError("lockedAt")
	}

	p.documentRef = documentRef
	p.documentGeneratedAt = documentGeneratedAt
	p.isLocked = isLocked
	p.lockedAt = lockedAt
	return p, nil
}

// Validate ensures the Pod instance was properly constructed.
func (p *Pod) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPodIsNotConstructed
	}
	return nil
}

// IsEqual compares two pods by identifier.
func (p *Pod) IsEqual(other *Pod) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pod's unique identifier.
func (p *Pod) ID() kernel.UUID {
	return p.id
}

// Reference returns the human-facing POD reference.
func (p *Pod) Reference() kernel.PodReference {
	return p.reference
}

// PackageID returns the identifier of the one package this pod confirms.
func (p *Pod) PackageID() kernel.UUID {
	return p.packageID
}

// Snapshot returns the values frozen at creation time.
func (p *Pod) Snapshot() Snapshot {
	return p.snapshot
}

// CreatedBy returns the staff member who completed the proof of delivery.
func (p *Pod) CreatedBy() kernel.UUID {
	return p.createdBy
}

// SignatureRef returns the stored reference to the signature asset.
func (p *Pod) SignatureRef() string {
	return p.signatureRef
}

// SignedAt returns the moment the receiver signed.
func (p *Pod) SignedAt() time.Time {
	return p.signedAt
}

// CompletedAt returns the moment the proof of delivery was completed.
func (p *Pod) CompletedAt() time.Time {
	return p.completedAt
}

// DocumentRef returns the attached document reference, empty when none.
func (p *Pod) DocumentRef() string {
	return p.documentRef
}

// DocumentGeneratedAt returns when the attached document was generated, nil
// when none.
func (p *Pod) DocumentGeneratedAt() *time.Time {
	return p.documentGeneratedAt
}

// IsLocked reports whether the pod is permanently immutable.
func (p *Pod) IsLocked() bool {
	return p.isLocked
}

// LockedAt returns the lock time, nil while unlocked.
func (p *Pod) LockedAt() *time.Time {
	return p.lockedAt
}

// EnsureUnlocked returns a LockedError when the pod is locked. Every mutating
// path calls this before any other validation.
func (p *Pod) EnsureUnlocked() error {
	if p.isLocked {
		lockedAt := time.Time{}
		if p.lockedAt != nil {
			lockedAt = *p.lockedAt
		}
		return errs.NewLockedError(p.reference.String(), lockedAt)
	}
	return nil
}

// EnsureEditableBy returns a ForbiddenError unless the caller is the pod's
// creating staff member or an admin.
func (p *Pod) EnsureEditableBy(callerID kernel.UUID, callerRole staff.Role, operation string) error {
	if callerRole == staff.Admin || p.createdBy.IsEqual(callerID) {
		return nil
	}
	return errs.NewForbiddenError(callerID.String(), callerRole.String(), operation)
}

// AttachDocument stores the document reference and its generation time.
// Fails with Locked when the pod is locked. Only the document fields change;
// everything else stays untouched.
func (p *Pod) AttachDocument(documentRef string, generatedAt time.Time) error {
	if err := p.EnsureUnlocked(); err != nil {
		return err
	}
	if documentRef == "" {
		return errs.NewValueIsRequiredError("documentRef")
	}

	p.documentRef = documentRef
	p.documentGeneratedAt = &generatedAt
	return nil
}

// Lock makes the pod permanently immutable.
//
// Locking is deliberately not idempotent: a second lock attempt fails with
// AlreadyLocked so double-lock attempts stay visible in audit. Only the
// creating staff member or an admin may lock. Nothing in the system ever
// clears the flag again.
func (p *Pod) Lock(callerID kernel.UUID, callerRole staff.Role, at time.Time) error {
	if p.isLocked {
		lockedAt := time.Time{}
		if p.lockedAt != nil {
			lockedAt = *p.lockedAt
		}
		return errs.NewAlreadyLockedError(p.reference.String(), lockedAt)
	}
	if err := p.EnsureEditableBy(callerID, callerRole, "lockPod"); err != nil {
		return err
	}

	p.isLocked = true
	p.lockedAt = &at
	return nil
}

func (p *Pod) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pod) setReference(reference kernel.PodReference) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	p.reference = reference
	return nil
}

func (p *Pod) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	p.packageID = packageID
	return nil
}

func (p *Pod) setSnapshot(snapshot Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	p.snapshot = snapshot
	return nil
}

func (p *Pod) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}

func (p *Pod) setSignatureRef(signatureRef string) error {
	if signatureRef == "" {
		return errs.NewValueIsRequiredError("signatureRef")
	}
	p.signatureRef = signatureRef
	return nil
}
