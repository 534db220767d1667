// Package domain contains the core data types for the trip registry.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Country is immutable reference data linked to trips through Country_Trip.
type Country struct {
	ID   int
	Name string
}

// Trip is a bookable trip together with the countries it visits.
// Countries is never nil on trips returned by the service layer; a trip with
// no linked countries carries an empty slice.
type Trip struct {
	ID          int
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int
	Countries   []Country
}

// CountryLink is one row of the Country_Trip link table.
type CountryLink struct {
	CountryID int
	TripID    int
}
