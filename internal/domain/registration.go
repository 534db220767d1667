package domain

import "time"

// Registration records that a client booked a trip.
// RegisteredAt and PaymentDate use the DateKey encoding; PaymentDate is nil
// until the trip is paid for.
type Registration struct {
	ClientID     int
	TripID       int
	RegisteredAt int
	PaymentDate  *int
}

// RegisterInput is the caller-supplied part of a new registration.
type RegisterInput struct {
	PaymentDate *int
}

// ClientTrip is a flat view of one trip a client is registered for.
type ClientTrip struct {
	TripID       int
	Name         string
	Description  string
	DateFrom     time.Time
	DateTo       time.Time
	RegisteredAt int
	PaymentDate  *int
}
