package errs

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the compliance-relevant error kinds. Rejections carrying
// these kinds are auditable events: every mutation path that returns one of
// Locked, AlreadyLocked, DuplicatePod or Forbidden must append an audit entry
// describing the denied attempt before returning.
var (
	ErrForbidden         = errors.New("forbidden")
	ErrDeactivated       = errors.New("staff is deactivated")
	ErrLocked            = errors.New("record is locked")
	ErrAlreadyLocked     = errors.New("record is already locked")
	ErrDuplicatePod      = errors.New("pod already exists for package")
	ErrAlreadyCollected  = errors.New("package is already collected")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ForbiddenError indicates the caller's role or identity does not satisfy the
// operation's gate.
type ForbiddenError struct {
	StaffID   string
	Role      string
	Operation string
}

// NewForbiddenError creates a ForbiddenError for the given caller and operation.
func NewForbiddenError(staffID, role, operation string) *ForbiddenError {
	return &ForbiddenError{
		StaffID:   staffID,
		Role:      role,
		Operation: operation,
	}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s may not perform %s (staff: %s)",
		ErrForbidden, e.Role, e.Operation, e.StaffID)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// DeactivatedError indicates the caller resolved to a known staff profile that
// has been soft-disabled. Deactivated staff may still authenticate upstream,
// so every operation re-checks the flag.
type DeactivatedError struct {
	StaffID string
}

// NewDeactivatedError creates a DeactivatedError for the given staff member.
func NewDeactivatedError(staffID string) *DeactivatedError {
	return &DeactivatedError{StaffID: staffID}
}

func (e *DeactivatedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDeactivated, e.StaffID)
}

func (e *DeactivatedError) Unwrap() error {
	return ErrDeactivated
}

// LockedError indicates the target pod, or the package it belongs to, is
// permanently immutable. Carries the pod reference and lock time so callers can
// render a message without a second lookup.
type LockedError struct {
	PodReference string
	LockedAt     time.Time
}

// NewLockedError creates a LockedError for the given pod.
func NewLockedError(podReference string, lockedAt time.Time) *LockedError {
	return &LockedError{PodReference: podReference, LockedAt: lockedAt}
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s: pod %s locked at %s",
		ErrLocked, e.PodReference, e.LockedAt.Format(time.RFC3339))
}

func (e *LockedError) Unwrap() error {
	return ErrLocked
}

// AlreadyLockedError indicates a redundant lock attempt. Locking is
// deliberately not idempotent so double-lock attempts stay visible in audit.
type AlreadyLockedError struct {
	PodReference string
	LockedAt     time.Time
}

// NewAlreadyLockedError creates an AlreadyLockedError for the given pod.
func NewAlreadyLockedError(podReference string, lockedAt time.Time) *AlreadyLockedError {
	return &AlreadyLockedError{PodReference: podReference, LockedAt: lockedAt}
}

func (e *AlreadyLockedError) Error() string {
	return fmt.Sprintf("%s: pod %s locked at %s",
		ErrAlreadyLocked, e.PodReference, e.LockedAt.Format(time.RFC3339))
}

func (e *AlreadyLockedError) Unwrap() error {
	return ErrAlreadyLocked
}

// DuplicatePodError indicates a pod already exists for the package. The
// uniqueness check and insert are a single atomic step, so under concurrent
// creation exactly one caller wins and the rest receive this error.
type DuplicatePodError struct {
	PackageID            string
	ExistingPodReference string
}

// NewDuplicatePodError creates a DuplicatePodError for the given package.
// existingPodReference may be empty when the winning pod could not be re-read.
func NewDuplicatePodError(packageID, existingPodReference string) *DuplicatePodError {
	return &DuplicatePodError{
		PackageID:            packageID,
		ExistingPodReference: existingPodReference,
	}
}

func (e *DuplicatePodError) Error() string {
	if e.ExistingPodReference != "" {
		return fmt.Sprintf("%s: package %s already has pod %s",
			ErrDuplicatePod, e.PackageID, e.ExistingPodReference)
	}
	return fmt.Sprintf("%s: package %s", ErrDuplicatePod, e.PackageID)
}

func (e *DuplicatePodError) Unwrap() error {
	return ErrDuplicatePod
}

// AlreadyCollectedError indicates pod creation was attempted against a package
// that already reached the collected terminal state.
type AlreadyCollectedError struct {
	TrackingRef string
}

// NewAlreadyCollectedError creates an AlreadyCollectedError for the given package.
func NewAlreadyCollectedError(trackingRef string) *AlreadyCollectedError {
	return &AlreadyCollectedError{TrackingRef: trackingRef}
}

func (e *AlreadyCollectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyCollected, e.TrackingRef)
}

func (e *AlreadyCollectedError) Unwrap() error {
	return ErrAlreadyCollected
}

// InvalidTransitionError indicates the requested status change is not reachable
// from the package's current status. Re-applying an already-applied transition
// fails with this error rather than silently succeeding.
type InvalidTransitionError struct {
	CurrentStatus string
	Requested     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given attempt.
func NewInvalidTransitionError(currentStatus, requested string) *InvalidTransitionError {
	return &InvalidTransitionError{CurrentStatus: currentStatus, Requested: requested}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not valid from status %s",
		ErrInvalidTransition, e.Requested, e.CurrentStatus)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
