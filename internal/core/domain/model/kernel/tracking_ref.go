package kernel

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"deliveryledger/internal/pkg/errs"
)

// trackingRefAlphabet holds the characters used for the random suffix of a
// tracking reference. Uppercase letters and digits only, so references survive
// case-insensitive channels (labels, phone, email subjects).
const trackingRefAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// trackingRefPattern matches the canonical PKG-YYYYMMDD-XXXX form.
var trackingRefPattern = regexp.MustCompile(`^PKG-\d{8}-[A-Z0-9]{4}$`)

// ErrTrackingRefIsNotConstructed indicates a zero-value TrackingRef.
var ErrTrackingRefIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingRef must be created via GenerateTrackingRef or TrackingRefFromString")

// TrackingRef is the human-facing package reference in the form
// PKG-YYYYMMDD-XXXX, where the date is the creation day and XXXX is a random
// alphanumeric suffix. The suffix is short enough to collide, so creation
// retries generation when the storage layer reports the reference taken.
type TrackingRef struct {
	value string
}

// GenerateTrackingRef produces a new candidate reference for the given
// creation time. Uniqueness is only guaranteed by the storage layer; callers
// must retry on collision.
func GenerateTrackingRef(createdAt time.Time) TrackingRef {
	suffix := make([]byte, 4)
	random := make([]byte, 4)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(random)
	for i, b := range random {
		suffix[i] = trackingRefAlphabet[int(b)%len(trackingRefAlphabet)]
	}

	return TrackingRef{
		value: fmt.Sprintf("PKG-%s-%s", createdAt.Format("20060102"), suffix),
	}
}

// TrackingRefFromString parses a reference from its canonical string form.
// Returns an error when the input does not match PKG-YYYYMMDD-XXXX.
func TrackingRefFromString(s string) (TrackingRef, error) {
	if !trackingRefPattern.MatchString(s) {
		return TrackingRef{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingRef", fmt.Errorf("%q does not match PKG-YYYYMMDD-XXXX", s))
	}
	return TrackingRef{value: s}, nil
}

// String returns the canonical reference string.
func (r TrackingRef) String() string {
	return r.value
}

// IsEqual compares two tracking references.
func (r TrackingRef) IsEqual(other TrackingRef) bool {
	return r.value == other.value
}

// Validate returns ErrTrackingRefIsNotConstructed for the zero value.
func (r TrackingRef) Validate() error {
	if r.value == "" {
		return ErrTrackingRefIsNotConstructed
	}
	return nil
}
