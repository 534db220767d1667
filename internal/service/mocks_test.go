package service_test

import (
	"context"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs; calling an unset one panics, which flags an
// unexpected repo call.

// mockStore hands the same repos to every session and counts how it was used.
type mockStore struct {
	repos    repo.Repos
	sessions int
	txs      int
}

func (m *mockStore) Session(_ context.Context, fn func(repo.Repos) error) error {
	m.sessions++
	return fn(m.repos)
}
func (m *mockStore) Tx(_ context.Context, fn func(repo.Repos) error) error {
	m.txs++
	return fn(m.repos)
}

type mockCountryRepo struct {
	list func(ctx context.Context) ([]domain.Country, error)
}

func (m *mockCountryRepo) List(ctx context.Context) ([]domain.Country, error) {
	return m.list(ctx)
}

type mockTripRepo struct {
	list             func(ctx context.Context) ([]domain.Trip, error)
	listCountryLinks func(ctx context.Context) ([]domain.CountryLink, error)
	getByID          func(ctx context.Context, id int) (domain.Trip, error)
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListCountryLinks(ctx context.Context) ([]domain.CountryLink, error) {
	return m.listCountryLinks(ctx)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	return m.getByID(ctx, id)
}

type mockClientRepo struct {
	exists func(ctx context.Context, id int) (bool, error)
	create func(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error)
}

func (m *mockClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	return m.exists(ctx, id)
}
func (m *mockClientRepo) Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error) {
	return m.create(ctx, in)
}

type mockRegistrationRepo struct {
	exists       func(ctx context.Context, clientID, tripID int) (bool, error)
	create       func(ctx context.Context, reg domain.Registration) error
	delete       func(ctx context.Context, clientID, tripID int) (int64, error)
	listByClient func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

func (m *mockRegistrationRepo) Exists(ctx context.Context, clientID, tripID int) (bool, error) {
	return m.exists(ctx, clientID, tripID)
}
func (m *mockRegistrationRepo) Create(ctx context.Context, reg domain.Registration) error {
	return m.create(ctx, reg)
}
func (m *mockRegistrationRepo) Delete(ctx context.Context, clientID, tripID int) (int64, error) {
	return m.delete(ctx, clientID, tripID)
}
func (m *mockRegistrationRepo) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listByClient(ctx, clientID)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.Store            = (*mockStore)(nil)
	_ repo.CountryRepo      = (*mockCountryRepo)(nil)
	_ repo.TripRepo         = (*mockTripRepo)(nil)
	_ repo.ClientRepo       = (*mockClientRepo)(nil)
	_ repo.RegistrationRepo = (*mockRegistrationRepo)(nil)
)
