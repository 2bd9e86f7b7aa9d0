package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"deliveryledger/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingRef(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("matches PKG-YYYYMMDD-XXXX", func(t *testing.T) {
		ref := kernel.GenerateTrackingRef(createdAt)

		require.NoError(t, ref.Validate())
		assert.Regexp(t, regexp.MustCompile(`^PKG-20250601-[A-Z0-9]{4}$`), ref.String())
	})

	t.Run("embeds the creation date", func(t *testing.T) {
		newYearsEve := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

		ref := kernel.GenerateTrackingRef(newYearsEve)

		assert.Contains(t, ref.String(), "PKG-20251231-")
	})

	t.Run("produces varying suffixes", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 50 {
			seen[kernel.GenerateTrackingRef(createdAt).String()] = true
		}

		// Collisions are possible but 50 identical draws are not.
		assert.Greater(t, len(seen), 1)
	})
}

func TestTrackingRefFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		ref, err := kernel.TrackingRefFromString("PKG-20250601-A1B2")

		require.NoError(t, err)
		assert.Equal(t, "PKG-20250601-A1B2", ref.String())
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		malformed := []string{
			"",
			"PKG-2025-A1B2",
			"PKG-20250601-a1b2",
			"PKG-20250601-A1B",
			"POD-20250601-A1B2",
			"PKG-20250601-A1B2-X",
		}

		for _, input := range malformed {
			_, err := kernel.TrackingRefFromString(input)
			require.Error(t, err, "input %q should be rejected", input)
		}
	})
}

func TestTrackingRef_Validate(t *testing.T) {
	var zero kernel.TrackingRef

	err := zero.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrTrackingRefIsNotConstructed, err)
}

func TestPodReference(t *testing.T) {
	t.Run("formats year and zero-padded sequence", func(t *testing.T) {
		ref, err := kernel.NewPodReference(2025, 7)

		require.NoError(t, err)
		assert.Equal(t, "POD-2025-0007", ref.String())
		assert.Equal(t, 2025, ref.Year())
		assert.Equal(t, int64(7), ref.Sequence())
	})

	t.Run("sequence grows past four digits without truncation", func(t *testing.T) {
		ref, err := kernel.NewPodReference(2026, 12345)

		require.NoError(t, err)
		assert.Equal(t, "POD-2026-12345", ref.String())
		assert.Equal(t, int64(12345), ref.Sequence())
	})

	t.Run("rejects non-positive sequence", func(t *testing.T) {
		_, err := kernel.NewPodReference(2025, 0)

		require.Error(t, err)
	})

	t.Run("rejects out-of-range year", func(t *testing.T) {
		_, err := kernel.NewPodReference(199, 1)

		require.Error(t, err)
	})

	t.Run("parses canonical form", func(t *testing.T) {
		ref, err := kernel.PodReferenceFromString("POD-2025-0042")

		require.NoError(t, err)
		assert.Equal(t, 2025, ref.Year())
		assert.Equal(t, int64(42), ref.Sequence())
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		malformed := []string{"", "POD-25-0001", "POD-2025-1", "PKG-2025-0001", "POD-2025-00A1"}

		for _, input := range malformed {
			_, err := kernel.PodReferenceFromString(input)
			require.Error(t, err, "input %q should be rejected", input)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var zero kernel.PodReference

		err := zero.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPodReferenceIsNotConstructed, err)
	})
}
