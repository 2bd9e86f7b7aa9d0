package staff

import (
	"fmt"

	"deliveryledger/internal/pkg/errs"
)

// Role represents a staff member's authorization role. The role set is closed:
// warehouse, driver, collection and admin. Admin implicitly satisfies every
// role-gated check in the system; there is no separate admin branch anywhere
// else.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Warehouse staff register packages and hand them over for collection.
	Warehouse

	// Driver staff pick packages up and move them between sites.
	Driver

	// Collection staff receive packages at the collection point and complete
	// proof-of-delivery.
	Collection

	// Admin satisfies every role gate.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Warehouse:   "warehouse",
		Driver:      "driver",
		Collection:  "collection",
		Admin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Warehouse:  "warehouse",
		Driver:     "driver",
		Collection: "collection",
		Admin:      "admin",
	}
}

// RoleFromString parses a role from its string form as stored or transported.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the closed role set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Satisfies reports whether this role passes a gate requiring the given role.
// Admin satisfies every gate; all other roles satisfy only their own.
func (r Role) Satisfies(required Role) bool {
	if r == Admin {
		return true
	}
	return r == required
}

// SatisfiesAny reports whether this role passes a gate requiring any of the
// given roles. An empty gate is never satisfied.
func (r Role) SatisfiesAny(required ...Role) bool {
	for _, req := range required {
		if r.Satisfies(req) {
			return true
		}
	}
	return false
}
