package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// Exists reports whether a client with the given ID exists.
	Exists(ctx context.Context, id int) (bool, error)

	// Create inserts a new client and returns the persisted record with its
	// store-assigned ID. Returns domain.ErrCreationFailed if the insert
	// returned no row.
	Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

func (r *pgClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM Client WHERE IdClient = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ClientRepo.Exists: %w", err)
	}
	return exists, nil
}

func (r *pgClientRepo) Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error) {
	const q = `
		INSERT INTO Client (FirstName, LastName, Email, Telephone, Pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		RETURNING IdClient, FirstName, LastName, Email, Telephone, Pesel`

	args := pgx.NamedArgs{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"telephone":  in.Telephone,
		"pesel":      in.Pesel,
	}

	var c domain.Client
	err := r.db.QueryRow(ctx, q, args).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", domain.ErrCreationFailed)
		}
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return c, nil
}
