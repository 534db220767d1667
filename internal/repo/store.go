// Package repo contains all database access logic for the trip registry.
// Each table has its own file with an interface and a Postgres implementation.
// No business logic lives here; only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgxpool.Conn,
// *pgx.Conn, and pgx.Tx. Accepting this interface instead of *pgxpool.Pool
// directly allows integration tests to pass a transaction that is rolled back
// after each test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos bundles the per-table repositories bound to a single session.
type Repos struct {
	Countries     CountryRepo
	Trips         TripRepo
	Clients       ClientRepo
	Registrations RegistrationRepo
}

// newRepos binds every repository to the same db handle.
func newRepos(d db) Repos {
	return Repos{
		Countries:     NewCountryRepo(d),
		Trips:         NewTripRepo(d),
		Clients:       NewClientRepo(d),
		Registrations: NewRegistrationRepo(d),
	}
}

// Store hands out sessions against the backing database.
// The service layer depends on this interface so it can be unit-tested with
// a mock that passes mock repositories into fn.
type Store interface {
	// Session runs fn with repositories bound to one connection. The
	// connection is released when fn returns, on every exit path.
	Session(ctx context.Context, fn func(Repos) error) error

	// Tx is Session wrapped in a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	Tx(ctx context.Context, fn func(Repos) error) error
}

// pgStore is the Postgres implementation of Store.
// acquire returns the handle for one session and the func that releases it.
type pgStore struct {
	acquire func(ctx context.Context) (db, func(), error)
}

// NewStore constructs a Store that acquires a fresh pooled connection for
// every session and returns it to the pool afterwards.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{
		acquire: func(ctx context.Context) (db, func(), error) {
			conn, err := pool.Acquire(ctx)
			if err != nil {
				return nil, nil, err
			}
			return conn, conn.Release, nil
		},
	}
}

// NewStoreOn constructs a Store whose sessions all run on d.
// In tests pass a pgx.Tx for rollback isolation; Tx then opens a savepoint.
func NewStoreOn(d db) Store {
	return &pgStore{
		acquire: func(context.Context) (db, func(), error) {
			return d, func() {}, nil
		},
	}
}

// Session acquires a connection, runs fn, and releases the connection.
func (s *pgStore) Session(ctx context.Context, fn func(Repos) error) error {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		return fmt.Errorf("repo.Store.Session: acquire: %w", err)
	}
	defer release()

	return fn(newRepos(conn))
}

// Tx acquires a connection and runs fn inside a transaction on it.
func (s *pgStore) Tx(ctx context.Context, fn func(Repos) error) error {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		return fmt.Errorf("repo.Store.Tx: acquire: %w", err)
	}
	defer release()

	return pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
		return fn(newRepos(tx))
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}
