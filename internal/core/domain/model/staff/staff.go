package staff

import (
	"errors"
	"net/mail"

	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/pkg/errs"
)

// ErrStaffIsNotConstructed is returned when a Staff instance was not created
// through NewStaff or RestoreStaff.
var ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")

// Staff is the aggregate root for an authorization identity. It binds an
// external identity-provider account to a role and an active flag.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty external account id
//   - Must have a valid email and non-empty name (both are snapshotted onto
//     pods at creation time, so they must always be present)
//   - Role is drawn from the closed role set
//   - Deactivation is a soft-disable: the flag flips, the record is never
//     deleted, so historical audit entries stay attributable
type Staff struct {
	id                kernel.UUID
	externalAccountID string
	name              string
	email             string
	role              Role
	isActive          bool

	isConstructed bool
}

// NewStaff creates an active staff profile with validation. This is the only
// way to create a valid profile for a new account.
func NewStaff(id kernel.UUID, externalAccountID, name, email string, role Role) (*Staff, error) {
	member := &Staff{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		member.setID(id),
		member.setExternalAccountID(externalAccountID),
		member.setName(name),
		member.setEmail(email),
		member.setRole(role),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreStaff reconstructs a staff profile from persistence, including its
// active flag. Validation rules match NewStaff.
func RestoreStaff(
	id kernel.UUID, externalAccountID, name, email string, role Role, isActive bool,
) (*Staff, error) {
	member, err := NewStaff(id, externalAccountID, name, email, role)
	if err != nil {
		return nil, err
	}

	member.isActive = isActive
	return member, nil
}

// Validate ensures the Staff instance was properly constructed.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// IsEqual compares two staff profiles by identifier.
func (s *Staff) IsEqual(other *Staff) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// ExternalAccountID returns the identity-provider account id this profile is
// bound to.
func (s *Staff) ExternalAccountID() string {
	return s.externalAccountID
}

// Name returns the staff member's display name.
func (s *Staff) Name() string {
	return s.name
}

// Email returns the staff member's email address.
func (s *Staff) Email() string {
	return s.email
}

// Role returns the staff member's authorization role.
func (s *Staff) Role() Role {
	return s.role
}

// IsActive reports whether the profile is enabled for operations.
func (s *Staff) IsActive() bool {
	return s.isActive
}

// Deactivate soft-disables the profile. The operation is idempotent at the
// aggregate level; the record itself is never removed.
func (s *Staff) Deactivate() {
	s.isActive = false
}

// EnsureActive returns a DeactivatedError when the profile is soft-disabled.
// Every operation gate calls this before any role check.
func (s *Staff) EnsureActive() error {
	if !s.isActive {
		return errs.NewDeactivatedError(s.id.String())
	}
	return nil
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setExternalAccountID(externalAccountID string) error {
	if externalAccountID == "" {
		return errs.NewValueIsRequiredError("externalAccountID")
	}
	s.externalAccountID = externalAccountID
	return nil
}

func (s *Staff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Staff) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	s.email = email
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
