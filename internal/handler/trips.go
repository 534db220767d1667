package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-registry/internal/domain"
)

type countryResponse struct {
	IdCountry int    `json:"idCountry"`
	Name      string `json:"name"`
}

type tripResponse struct {
	IdTrip      int                `json:"idTrip"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DateFrom    openapi_types.Date `json:"dateFrom"`
	DateTo      openapi_types.Date `json:"dateTo"`
	MaxPeople   int                `json:"maxPeople"`
	Countries   []countryResponse  `json:"countries"`
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into its JSON view.
// countries is always an array, never null.
func tripToResponse(t domain.Trip) tripResponse {
	countries := make([]countryResponse, len(t.Countries))
	for i, c := range t.Countries {
		countries[i] = countryResponse{IdCountry: c.ID, Name: c.Name}
	}
	return tripResponse{
		IdTrip:      t.ID,
		Name:        t.Name,
		Description: t.Description,
		DateFrom:    openapi_types.Date{Time: t.DateFrom},
		DateTo:      openapi_types.Date{Time: t.DateTo},
		MaxPeople:   t.MaxPeople,
		Countries:   countries,
	}
}
