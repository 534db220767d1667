package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-registry/internal/domain"
)

// TripRepo defines the read operations for Trips and the Country_Trip link table.
// Trips are created outside this service, so there is no write path here.
type TripRepo interface {
	// List returns all trips ordered by IdTrip, without their countries.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListCountryLinks returns every (country, trip) pair from Country_Trip.
	ListCountryLinks(ctx context.Context) ([]domain.CountryLink, error)

	// GetByID retrieves a single trip, without its countries.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass a pooled connection; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// List returns all trips ordered by IdTrip ascending.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT IdTrip, Name, Description, DateFrom, DateTo, MaxPeople
		FROM Trip
		ORDER BY IdTrip`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// ListCountryLinks returns the raw link rows; dangling ids are left for the caller to skip.
func (r *pgTripRepo) ListCountryLinks(ctx context.Context) ([]domain.CountryLink, error) {
	const q = `SELECT IdCountry, IdTrip FROM Country_Trip`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListCountryLinks: %w", err)
	}
	defer rows.Close()

	links := []domain.CountryLink{}
	for rows.Next() {
		var l domain.CountryLink
		if err := rows.Scan(&l.CountryID, &l.TripID); err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListCountryLinks: scan: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListCountryLinks: rows: %w", err)
	}

	return links, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	const q = `
		SELECT IdTrip, Name, Description, DateFrom, DateTo, MaxPeople
		FROM Trip
		WHERE IdTrip = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanTrip maps a single database row into a domain.Trip.
// Countries is left nil; the service layer attaches them.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		dateFrom pgtype.Date
		dateTo   pgtype.Date
	)

	err := s.Scan(&t.ID, &t.Name, &t.Description, &dateFrom, &dateTo, &t.MaxPeople)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.DateFrom = dateFrom.Time
	t.DateTo = dateTo.Time
	return t, nil
}
