package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-registry/internal/domain"
)

// CountryRepo defines the read operations for the Country reference table.
type CountryRepo interface {
	// List returns every country ordered by IdCountry.
	List(ctx context.Context) ([]domain.Country, error)
}

// pgCountryRepo is the Postgres implementation of CountryRepo.
type pgCountryRepo struct {
	db db
}

// NewCountryRepo constructs a CountryRepo backed by the provided db connection.
func NewCountryRepo(db db) CountryRepo {
	return &pgCountryRepo{db: db}
}

func (r *pgCountryRepo) List(ctx context.Context) ([]domain.Country, error) {
	const q = `
		SELECT IdCountry, Name
		FROM Country
		ORDER BY IdCountry`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CountryRepo.List: %w", err)
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("repo.CountryRepo.List: scan: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CountryRepo.List: rows: %w", err)
	}
	return countries, nil
}
