package domain

import (
	"fmt"
	"time"
)

// DateKey encodes the calendar date of t as an 8-digit YYYYMMDD integer,
// e.g. 2025-06-01 becomes 20250601. The date is taken in t's own location,
// so time-of-day never affects the result.
//
// Comparisons between DateKeys order the same way as the dates they encode.
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Today returns the DateKey of now.
func Today(now func() time.Time) int {
	return DateKey(now())
}

// ParseDateKey decodes a YYYYMMDD integer into a UTC midnight time.
// Returns ErrValidation if k is not a real calendar date in years 1000-9999.
func ParseDateKey(k int) (time.Time, error) {
	y, m, d := k/10000, (k/100)%100, k%100
	if y < 1000 || y > 9999 || m < 1 || m > 12 || d < 1 {
		return time.Time{}, fmt.Errorf("%w: %d is not a YYYYMMDD date", ErrValidation, k)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow (Feb 30 -> Mar 2); a round trip catches it.
	if DateKey(t) != k {
		return time.Time{}, fmt.Errorf("%w: %d is not a YYYYMMDD date", ErrValidation, k)
	}
	return t, nil
}
