// Package service contains the business logic for the trip registry.
// Services validate inputs, enforce booking rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// TripService builds the trip listing.
type TripService struct {
	store repo.Store
}

// NewTripService constructs a TripService backed by the provided Store.
func NewTripService(store repo.Store) *TripService {
	return &TripService{store: store}
}

// List returns every trip with its countries attached.
// Countries, trips, and links are read as three flat scans in one session and
// joined in memory, so no trip row is ever duplicated by a SQL join.
// Always returns a non-nil slice, and every trip has a non-nil Countries slice.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	var (
		countries []domain.Country
		trips     []domain.Trip
		links     []domain.CountryLink
	)

	err := s.store.Session(ctx, func(r repo.Repos) error {
		var err error
		if countries, err = r.Countries.List(ctx); err != nil {
			return err
		}
		if trips, err = r.Trips.List(ctx); err != nil {
			return err
		}
		links, err = r.Trips.ListCountryLinks(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}

	return attachCountries(trips, countries, links), nil
}

// attachCountries appends each linked country to its trip.
// Links whose trip or country is unknown are skipped, and a repeated link
// does not add the same country twice.
func attachCountries(trips []domain.Trip, countries []domain.Country, links []domain.CountryLink) []domain.Trip {
	out := make([]domain.Trip, len(trips))
	tripIdx := make(map[int]int, len(trips))
	for i, t := range trips {
		t.Countries = []domain.Country{}
		out[i] = t
		tripIdx[t.ID] = i
	}

	countryByID := make(map[int]domain.Country, len(countries))
	for _, c := range countries {
		countryByID[c.ID] = c
	}

	seen := make(map[domain.CountryLink]bool, len(links))
	for _, l := range links {
		i, ok := tripIdx[l.TripID]
		if !ok {
			continue
		}
		c, ok := countryByID[l.CountryID]
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		out[i].Countries = append(out[i].Countries, c)
	}

	return out
}
