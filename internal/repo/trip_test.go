package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
)

func TestCountryRepo_List(t *testing.T) {
	tx, r := newTestRepos(t)
	ctx := context.Background()

	pl := mustInsertCountry(t, tx, "Poland")
	it := mustInsertCountry(t, tx, "Italy")

	got, err := r.Countries.List(ctx)

	require.NoError(t, err)
	assert.Contains(t, got, domain.Country{ID: pl, Name: "Poland"})
	assert.Contains(t, got, domain.Country{ID: it, Name: "Italy"})
}

func TestTripRepo_List(t *testing.T) {
	tx, r := newTestRepos(t)
	ctx := context.Background()

	first := mustInsertTrip(t, tx, "Alps", date(2030, 1, 10))
	second := mustInsertTrip(t, tx, "Tatras", date(2030, 2, 10))

	trips, err := r.Trips.List(ctx)

	require.NoError(t, err)
	byID := map[int]domain.Trip{}
	var order []int
	for _, tr := range trips {
		byID[tr.ID] = tr
		order = append(order, tr.ID)
	}
	require.Contains(t, byID, first)
	require.Contains(t, byID, second)
	assert.Equal(t, "Alps", byID[first].Name)
	assert.Equal(t, "Alps description", byID[first].Description)
	assert.True(t, byID[first].DateFrom.Equal(date(2030, 1, 10)), "DateFrom mismatch")
	assert.True(t, byID[first].DateTo.Equal(date(2030, 1, 17)), "DateTo mismatch")
	assert.Equal(t, 20, byID[first].MaxPeople)
	assert.Nil(t, byID[first].Countries, "repo does not attach countries")
	assert.IsIncreasing(t, order, "List is ordered by IdTrip")
}

func TestTripRepo_ListCountryLinks(t *testing.T) {
	tx, r := newTestRepos(t)
	ctx := context.Background()

	pl := mustInsertCountry(t, tx, "Poland")
	trip := mustInsertTrip(t, tx, "Mazury", date(2030, 7, 1))
	mustLinkCountry(t, tx, pl, trip)

	links, err := r.Trips.ListCountryLinks(ctx)

	require.NoError(t, err)
	assert.Contains(t, links, domain.CountryLink{CountryID: pl, TripID: trip})
}

func TestTripRepo_GetByID(t *testing.T) {
	tx, r := newTestRepos(t)
	ctx := context.Background()

	id := mustInsertTrip(t, tx, "Lisbon", date(2030, 5, 5))

	got, err := r.Trips.GetByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Lisbon", got.Name)
	assert.Equal(t, 20300505, domain.DateKey(got.DateFrom))
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	_, r := newTestRepos(t)

	_, err := r.Trips.GetByID(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTripRepo_GetByID_DateOnly verifies that a DATE column comes back as
// midnight, so DateKey sees exactly the stored calendar day.
func TestTripRepo_GetByID_DateOnly(t *testing.T) {
	tx, r := newTestRepos(t)

	id := mustInsertTrip(t, tx, "Oslo", date(2031, 12, 31))

	got, err := r.Trips.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 0, got.DateFrom.Hour())
	assert.Equal(t, time.December, got.DateFrom.Month())
	assert.Equal(t, 20311231, domain.DateKey(got.DateFrom))
}
