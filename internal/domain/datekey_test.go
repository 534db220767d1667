package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
)

func TestDateKey(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want int
	}{
		{"start of year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 20250101},
		{"end of year", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), 20251231},
		{"leap day", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), 20240229},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.DateKey(tc.in))
		})
	}
}

// TestDateKey_IgnoresTimeOfDay verifies that two instants on the same calendar
// day encode identically, so only the date takes part in comparisons.
func TestDateKey_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 6, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, domain.DateKey(morning), domain.DateKey(night))
	assert.Less(t, domain.DateKey(night), domain.DateKey(night.Add(time.Second)))
}

func TestDateKey_UsesOwnLocation(t *testing.T) {
	warsaw := time.FixedZone("CEST", 2*60*60)
	// 23:30 UTC on May 31 is already June 1 in Warsaw.
	instant := time.Date(2025, 5, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 20250531, domain.DateKey(instant))
	assert.Equal(t, 20250601, domain.DateKey(instant.In(warsaw)))
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC) }

	assert.Equal(t, 20260307, domain.Today(now))
}

func TestParseDateKey_Valid(t *testing.T) {
	got, err := domain.ParseDateKey(20240229)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateKey_Invalid(t *testing.T) {
	for _, k := range []int{0, 2025, 20251301, 20250001, 20250100, 20250230, 20230229, 99991232, 123456789} {
		_, err := domain.ParseDateKey(k)
		assert.ErrorIs(t, err, domain.ErrValidation, "key %d", k)
	}
}
