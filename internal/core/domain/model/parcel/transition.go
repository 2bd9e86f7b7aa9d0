package parcel

import (
	"fmt"

	"deliveryledger/internal/core/domain/model/staff"
	"deliveryledger/internal/pkg/errs"
)

// Transition identifies a caller-requested status change. Each transition
// carries its own role gate; the gate is defined here exactly once and shared
// by every entry point.
type Transition int

const (
	// UnknownTransition represents an invalid or undefined transition.
	UnknownTransition Transition = iota

	// TransitionPickup moves a package into transit. Drivers only.
	TransitionPickup

	// TransitionReceive books a package in at the collection point.
	// Collection staff only.
	TransitionReceive

	// TransitionCollect hands a package over to the receiver. Collection and
	// warehouse staff.
	TransitionCollect

	// TransitionReturn sends a package back to the sender. Admins only.
	TransitionReturn

	// TransitionNotify records a confirmed receiver notification. Warehouse
	// staff; also applied by the redelivery job acting for the warehouse.
	TransitionNotify
)

func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		UnknownTransition: "unknown",
		TransitionPickup:  "pickup",
		TransitionReceive: "receive",
		TransitionCollect: "collect",
		TransitionReturn:  "return",
		TransitionNotify:  "notify",
	}
}

// TransitionFromString parses a transition from its transport form.
func TransitionFromString(s string) (Transition, error) {
	for transition, str := range getTransitionStrings() {
		if transition != UnknownTransition && str == s {
			return transition, nil
		}
	}
	return UnknownTransition, errs.NewValueIsInvalidErrorWithCause(
		"transition", fmt.Errorf("%q is not a valid transition", s))
}

// Validate checks if the Transition value is one of the defined transitions.
func (t Transition) Validate() error {
	if _, ok := getTransitionStrings()[t]; !ok || t == UnknownTransition {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition", fmt.Errorf("%d is not a valid transition", t))
	}
	return nil
}

// String returns the lowercase transition name used on the wire and in audit
// metadata.
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// requiredRoles returns the role gate for the transition. Admin passes every
// gate through Role.Satisfies, so it is never listed explicitly.
func (t Transition) requiredRoles() []staff.Role {
	switch t {
	case TransitionPickup:
		return []staff.Role{staff.Driver}
	case TransitionReceive:
		return []staff.Role{staff.Collection}
	case TransitionCollect:
		return []staff.Role{staff.Collection, staff.Warehouse}
	case TransitionReturn:
		return nil // admin only
	case TransitionNotify:
		return []staff.Role{staff.Warehouse}
	default:
		return nil
	}
}

// Permits reports whether the given role passes this transition's gate.
func (t Transition) Permits(role staff.Role) bool {
	if role == staff.Admin {
		return true
	}
	return role.SatisfiesAny(t.requiredRoles()...)
}
