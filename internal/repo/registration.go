package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-registry/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for a unique or primary key violation.
const uniqueViolation = "23505"

// RegistrationRepo defines the persistence operations for the Client_Trip table.
type RegistrationRepo interface {
	// Exists reports whether the client is registered for the trip.
	Exists(ctx context.Context, clientID, tripID int) (bool, error)

	// Create inserts a registration. Returns domain.ErrConflict if the
	// (client, trip) pair is already registered.
	Create(ctx context.Context, reg domain.Registration) error

	// Delete removes a registration and returns the number of rows removed.
	Delete(ctx context.Context, clientID, tripID int) (int64, error)

	// ListByClient returns the client's registrations joined with trip
	// details, ordered by DateFrom descending.
	ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// pgRegistrationRepo is the Postgres implementation of RegistrationRepo.
type pgRegistrationRepo struct {
	db db
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db) RegistrationRepo {
	return &pgRegistrationRepo{db: db}
}

func (r *pgRegistrationRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM Client_Trip
			WHERE IdClient = @client_id AND IdTrip = @trip_id
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.RegistrationRepo.Exists: %w", err)
	}
	return exists, nil
}

// Create inserts a registration row. The composite primary key is the
// authoritative duplicate guard when two callers race past Exists.
func (r *pgRegistrationRepo) Create(ctx context.Context, reg domain.Registration) error {
	const q = `
		INSERT INTO Client_Trip (IdClient, IdTrip, RegisteredAt, PaymentDate)
		VALUES (@client_id, @trip_id, @registered_at, @payment_date)`

	args := pgx.NamedArgs{
		"client_id":     reg.ClientID,
		"trip_id":       reg.TripID,
		"registered_at": reg.RegisteredAt,
		"payment_date":  reg.PaymentDate, // nil becomes NULL
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("repo.RegistrationRepo.Create: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.RegistrationRepo.Create: %w", err)
	}
	return nil
}

func (r *pgRegistrationRepo) Delete(ctx context.Context, clientID, tripID int) (int64, error) {
	const q = `DELETE FROM Client_Trip WHERE IdClient = @client_id AND IdTrip = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.RegistrationRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByClient orders by IdTrip as a tiebreak so trips starting the same day
// come back in a stable order.
func (r *pgRegistrationRepo) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	const q = `
		SELECT t.IdTrip, t.Name, t.Description, t.DateFrom, t.DateTo,
		       ct.RegisteredAt, ct.PaymentDate
		FROM Client_Trip ct
		JOIN Trip t ON t.IdTrip = ct.IdTrip
		WHERE ct.IdClient = @client_id
		ORDER BY t.DateFrom DESC, t.IdTrip DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: %w", err)
	}
	defer rows.Close()

	trips := []domain.ClientTrip{}
	for rows.Next() {
		ct, err := scanClientTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: scan: %w", err)
		}
		trips = append(trips, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: rows: %w", err)
	}
	return trips, nil
}

// scanClientTrip maps a joined Client_Trip/Trip row, turning a NULL
// PaymentDate into a nil pointer.
func scanClientTrip(s scanner) (domain.ClientTrip, error) {
	var (
		ct          domain.ClientTrip
		dateFrom    pgtype.Date
		dateTo      pgtype.Date
		paymentDate pgtype.Int4
	)

	err := s.Scan(&ct.TripID, &ct.Name, &ct.Description, &dateFrom, &dateTo, &ct.RegisteredAt, &paymentDate)
	if err != nil {
		return domain.ClientTrip{}, err
	}

	ct.DateFrom = dateFrom.Time
	ct.DateTo = dateTo.Time
	if paymentDate.Valid {
		pd := int(paymentDate.Int32)
		ct.PaymentDate = &pd
	}
	return ct, nil
}
