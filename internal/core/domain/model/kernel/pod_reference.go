package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"deliveryledger/internal/pkg/errs"
)

// podReferencePattern matches the canonical POD-YYYY-NNNN form. The sequence
// part is at least four digits and grows beyond four once the counter exceeds
// 9999.
var podReferencePattern = regexp.MustCompile(`^POD-\d{4}-\d{4,}$`)

// ErrPodReferenceIsNotConstructed indicates a zero-value PodReference.
var ErrPodReferenceIsNotConstructed = errs.NewValueIsRequiredError(
	"PodReference must be created via NewPodReference or PodReferenceFromString")

// PodReference is the human-facing proof-of-delivery reference in the form
// POD-YYYY-NNNN. The year is the creation year; the sequence is allocated from
// a single global counter that is never reset per year, so sequences stay
// monotonic across year boundaries.
type PodReference struct {
	value string
}

// NewPodReference builds a reference from a creation year and an allocated
// sequence number. The sequence must be positive.
func NewPodReference(year int, sequence int64) (PodReference, error) {
	if year < 2000 || year > 9999 {
		return PodReference{}, errs.NewValueIsOutOfRangeError("year", year, 2000, 9999)
	}
	if sequence <= 0 {
		return PodReference{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", sequence))
	}

	return PodReference{value: fmt.Sprintf("POD-%d-%04d", year, sequence)}, nil
}

// PodReferenceFromString parses a reference from its canonical string form.
func PodReferenceFromString(s string) (PodReference, error) {
	if !podReferencePattern.MatchString(s) {
		return PodReference{}, errs.NewValueIsInvalidErrorWithCause(
			"podReference", fmt.Errorf("%q does not match POD-YYYY-NNNN", s))
	}
	return PodReference{value: s}, nil
}

// String returns the canonical reference string.
func (r PodReference) String() string {
	return r.value
}

// Year returns the embedded creation year.
func (r PodReference) Year() int {
	parts := strings.Split(r.value, "-")
	if len(parts) != 3 {
		return 0
	}
	year, _ := strconv.Atoi(parts[1])
	return year
}

// Sequence returns the embedded sequence number.
func (r PodReference) Sequence() int64 {
	parts := strings.Split(r.value, "-")
	if len(parts) != 3 {
		return 0
	}
	seq, _ := strconv.ParseInt(parts[2], 10, 64)
	return seq
}

// IsEqual compares two pod references.
func (r PodReference) IsEqual(other PodReference) bool {
	return r.value == other.value
}

// Validate returns ErrPodReferenceIsNotConstructed for the zero value.
func (r PodReference) Validate() error {
	if r.value == "" {
		return ErrPodReferenceIsNotConstructed
	}
	return nil
}
