package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/repo"
	"github.com/pkordes/trip-registry/testutil"
)

// newTestRepos returns every repository bound to one rolled-back transaction.
func newTestRepos(t *testing.T) (pgx.Tx, repo.Repos) {
	t.Helper()
	tx := testutil.NewTx(t)

	var repos repo.Repos
	err := repo.NewStoreOn(tx).Session(context.Background(), func(r repo.Repos) error {
		repos = r
		return nil
	})
	require.NoError(t, err)
	return tx, repos
}

func mustInsertCountry(t *testing.T, tx pgx.Tx, name string) int {
	t.Helper()
	var id int
	err := tx.QueryRow(context.Background(),
		`INSERT INTO Country (Name) VALUES ($1) RETURNING IdCountry`, name).Scan(&id)
	require.NoError(t, err, "insert country")
	return id
}

func mustInsertTrip(t *testing.T, tx pgx.Tx, name string, from time.Time) int {
	t.Helper()
	var id int
	err := tx.QueryRow(context.Background(),
		`INSERT INTO Trip (Name, Description, DateFrom, DateTo, MaxPeople)
		 VALUES ($1, $2, $3, $4, $5) RETURNING IdTrip`,
		name, name+" description", from, from.AddDate(0, 0, 7), 20).Scan(&id)
	require.NoError(t, err, "insert trip")
	return id
}

func mustLinkCountry(t *testing.T, tx pgx.Tx, countryID, tripID int) {
	t.Helper()
	_, err := tx.Exec(context.Background(),
		`INSERT INTO Country_Trip (IdCountry, IdTrip) VALUES ($1, $2)`, countryID, tripID)
	require.NoError(t, err, "link country to trip")
}

func mustCreateClient(t *testing.T, clients repo.ClientRepo) domain.Client {
	t.Helper()
	c, err := clients.Create(context.Background(), clientFixture())
	require.NoError(t, err, "create client")
	return c
}

// clientFixture returns valid client input for use in tests.
func clientFixture() domain.ClientCreateInput {
	return domain.ClientCreateInput{
		FirstName: "Anna",
		LastName:  "Kowalska",
		Email:     "anna.kowalska@example.com",
		Telephone: "+48 600 100 200",
		Pesel:     "90010112345",
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
