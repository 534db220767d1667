package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// ClientService implements client creation and the registration lifecycle:
// listing a client's trips, registering for a trip, and cancelling.
type ClientService struct {
	store repo.Store
	now   func() time.Time
}

// NewClientService constructs a ClientService backed by the provided Store.
// now supplies the current time for the registration cutoff and RegisteredAt;
// pass nil to use time.Now.
func NewClientService(store repo.Store, now func() time.Time) *ClientService {
	if now == nil {
		now = time.Now
	}
	return &ClientService{store: store, now: now}
}

// Create validates the input and inserts a new client.
// Returns domain.ErrValidation if any field breaks its constraints, and
// domain.ErrCreationFailed if the store did not return the inserted row.
func (s *ClientService) Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error) {
	if err := validateStruct(in); err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}

	var created domain.Client
	err := s.store.Session(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Clients.Create(ctx, in)
		return err
	})
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return created, nil
}

// ListTrips returns the trips the client is registered for, most recent
// DateFrom first. Returns domain.ErrNotFound if the client does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ClientService) ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	var trips []domain.ClientTrip
	err := s.store.Session(ctx, func(r repo.Repos) error {
		if err := requireClient(ctx, r, clientID); err != nil {
			return err
		}
		var err error
		trips, err = r.Registrations.ListByClient(ctx, clientID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service.ClientService.ListTrips: %w", err)
	}
	if trips == nil {
		return []domain.ClientTrip{}, nil
	}
	return trips, nil
}

// RegisterForTrip registers a client for a trip. The checks run in a fixed
// order and the first failure wins:
//   - the client must exist (domain.ErrNotFound);
//   - the trip must exist and start strictly after today (domain.ErrNotFound);
//   - the client must not already be registered (domain.ErrConflict).
//
// Only then is the registration written, with RegisteredAt set to today.
// Checks and insert share one transaction; the composite primary key turns a
// concurrent duplicate into domain.ErrConflict as well.
func (s *ClientService) RegisterForTrip(ctx context.Context, clientID, tripID int, in domain.RegisterInput) error {
	if in.PaymentDate != nil {
		if _, err := domain.ParseDateKey(*in.PaymentDate); err != nil {
			return fmt.Errorf("service.ClientService.RegisterForTrip: %w: paymentDate %d is not a YYYYMMDD date",
				domain.ErrValidation, *in.PaymentDate)
		}
	}

	today := domain.Today(s.now)

	err := s.store.Tx(ctx, func(r repo.Repos) error {
		if err := requireClient(ctx, r, clientID); err != nil {
			return err
		}
		if err := requireOpenTrip(ctx, r, tripID, today); err != nil {
			return err
		}

		registered, err := r.Registrations.Exists(ctx, clientID, tripID)
		if err != nil {
			return err
		}
		if registered {
			return fmt.Errorf("%w: client %d already registered for trip %d", domain.ErrConflict, clientID, tripID)
		}

		return r.Registrations.Create(ctx, domain.Registration{
			ClientID:     clientID,
			TripID:       tripID,
			RegisteredAt: today,
			PaymentDate:  in.PaymentDate,
		})
	})
	if err != nil {
		return fmt.Errorf("service.ClientService.RegisterForTrip: %w", err)
	}
	return nil
}

// CancelRegistration removes the client's registration for the trip.
// It reports false, without error, when there was nothing to remove.
func (s *ClientService) CancelRegistration(ctx context.Context, clientID, tripID int) (bool, error) {
	var removed bool
	err := s.store.Session(ctx, func(r repo.Repos) error {
		registered, err := r.Registrations.Exists(ctx, clientID, tripID)
		if err != nil || !registered {
			return err
		}
		n, err := r.Registrations.Delete(ctx, clientID, tripID)
		removed = n > 0
		return err
	})
	if err != nil {
		return false, fmt.Errorf("service.ClientService.CancelRegistration: %w", err)
	}
	return removed, nil
}

func requireClient(ctx context.Context, r repo.Repos, clientID int) error {
	found, err := r.Clients.Exists(ctx, clientID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: client %d not found", domain.ErrNotFound, clientID)
	}
	return nil
}

// requireOpenTrip enforces the registration cutoff: the trip's DateFrom,
// as a DateKey, must be strictly greater than today.
func requireOpenTrip(ctx context.Context, r repo.Repos, tripID, today int) error {
	trip, err := r.Trips.GetByID(ctx, tripID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if err != nil || domain.DateKey(trip.DateFrom) <= today {
		return fmt.Errorf("%w: trip %d not found or already started", domain.ErrNotFound, tripID)
	}
	return nil
}
