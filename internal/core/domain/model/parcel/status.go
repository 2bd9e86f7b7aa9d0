package parcel

import (
	"deliveryledger/internal/pkg/errs"
)

// Status represents the lifecycle state of a package. It implements a state
// machine with defined transitions so packages follow the collection workflow.
//
// State transitions:
//
//	Pending ──(notify)──> Notified
//	Pending, Notified ──(pickup)──> InTransit
//	InTransit ──(receive)──> ReadyForCollection
//	ReadyForCollection ──(collect)──> Collected            [terminal]
//	Pending, Notified, ReadyForCollection ──(return)──> Returned [terminal]
//
// Re-applying an already-applied transition is an error, never a silent
// success, so redundant attempts stay visible to callers and in audit.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status when a package is registered and the
	// receiver notification was not confirmed.
	Pending

	// Notified indicates the receiver notification was confirmed delivered.
	Notified

	// InTransit indicates a driver picked the package up.
	InTransit

	// ReadyForCollection indicates the package arrived at the collection point.
	ReadyForCollection

	// Collected indicates the package was handed over with a completed proof
	// of delivery. Terminal.
	Collected

	// Returned indicates the package was sent back to the sender. Terminal.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:      "Unknown",
		Pending:            "Pending",
		Notified:           "Notified",
		InTransit:          "InTransit",
		ReadyForCollection: "ReadyForCollection",
		Collected:          "Collected",
		Returned:           "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:            "Pending",
		Notified:           "Notified",
		InTransit:          "InTransit",
		ReadyForCollection: "ReadyForCollection",
		Collected:          "Collected",
		Returned:           "Returned",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Returned)))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Collected || s == Returned
}

// Notify transitions the status to Notified.
//
// Valid transitions:
//   - Pending -> Notified (receiver notification confirmed)
func (s Status) Notify() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), TransitionNotify.String())
	}
	return Notified, nil
}

// Pickup transitions the status to InTransit.
//
// Valid transitions:
//   - Pending -> InTransit
//   - Notified -> InTransit
//
// Calling pickup on a package that is already in transit fails; the transition
// is deliberately not idempotent.
func (s Status) Pickup() (Status, error) {
	if s != Pending && s != Notified {
		return 0, errs.NewInvalidTransitionError(s.String(), TransitionPickup.String())
	}
	return InTransit, nil
}

// Receive transitions the status to ReadyForCollection.
//
// Valid transitions:
//   - InTransit -> ReadyForCollection
func (s Status) Receive() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidTransitionError(s.String(), TransitionReceive.String())
	}
	return ReadyForCollection, nil
}

// Collect transitions the status to Collected, the terminal success state.
//
// Valid transitions:
//   - ReadyForCollection -> Collected
func (s Status) Collect() (Status, error) {
	if s != ReadyForCollection {
		return 0, errs.NewInvalidTransitionError(s.String(), TransitionCollect.String())
	}
	return Collected, nil
}

// Return transitions the status to Returned, the terminal failure state.
//
// Valid transitions:
//   - Pending -> Returned
//   - Notified -> Returned
//   - ReadyForCollection -> Returned
//
// Packages in transit cannot be returned until they are received somewhere.
func (s Status) Return() (Status, error) {
	if s != Pending && s != Notified && s != ReadyForCollection {
		return 0, errs.NewInvalidTransitionError(s.String(), TransitionReturn.String())
	}
	return Returned, nil
}
