package handler

import (
	"errors"
	"fmt"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-registry/internal/domain"
)

type createClientRequest struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     openapi_types.Email `json:"email"`
	Telephone string              `json:"telephone"`
	Pesel     string              `json:"pesel"`
}

type clientResponse struct {
	IdClient  int                 `json:"idClient"`
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     openapi_types.Email `json:"email"`
	Telephone string              `json:"telephone"`
	Pesel     string              `json:"pesel"`
}

type registerRequest struct {
	PaymentDate *int `json:"paymentDate"`
}

type clientTripResponse struct {
	IdTrip       int                `json:"idTrip"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	DateFrom     openapi_types.Date `json:"dateFrom"`
	DateTo       openapi_types.Date `json:"dateTo"`
	RegisteredAt int                `json:"registeredAt"`
	PaymentDate  *int               `json:"paymentDate,omitempty"`
}

// CreateClient handles POST /api/clients.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	var body createClientRequest
	if err := decodeJSON(w, r, &body); err != nil {
		if errors.Is(err, errEmptyBody) {
			writeError(w, http.StatusBadRequest, codeValidation, err.Error())
		}
		return
	}

	created, err := s.clients.Create(r.Context(), requestToClient(body))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/clients/%d", created.ID))
	writeJSON(w, http.StatusCreated, clientToResponse(created))
}

// ListClientTrips handles GET /api/clients/{idClient}/trips.
func (s *Server) ListClientTrips(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathInt(r, "idClient")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "idClient must be an integer")
		return
	}

	trips, err := s.clients.ListTrips(r.Context(), clientID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	data := make([]clientTripResponse, len(trips))
	for i, t := range trips {
		data[i] = clientTripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// RegisterClientForTrip handles PUT /api/clients/{idClient}/trips/{idTrip}.
// The body is optional; an empty one registers without a payment date.
func (s *Server) RegisterClientForTrip(w http.ResponseWriter, r *http.Request) {
	clientID, tripID, ok := registrationPath(w, r)
	if !ok {
		return
	}

	var body registerRequest
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, errEmptyBody) {
		return
	}

	err := s.clients.RegisterForTrip(r.Context(), clientID, tripID, domain.RegisterInput{PaymentDate: body.PaymentDate})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteRegistration handles DELETE /api/clients/{idClient}/trips/{idTrip}.
func (s *Server) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	clientID, tripID, ok := registrationPath(w, r)
	if !ok {
		return
	}

	removed, err := s.clients.CancelRegistration(r.Context(), clientID, tripID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, codeNotFound,
			fmt.Sprintf("client %d is not registered for trip %d", clientID, tripID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// registrationPath binds both path ids of a registration route, writing the
// 400 response itself when either is malformed.
func registrationPath(w http.ResponseWriter, r *http.Request) (clientID, tripID int, ok bool) {
	clientID, err := pathInt(r, "idClient")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "idClient must be an integer")
		return 0, 0, false
	}
	tripID, err = pathInt(r, "idTrip")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "idTrip must be an integer")
		return 0, 0, false
	}
	return clientID, tripID, true
}

// --- mapping helpers --------------------------------------------------------

func requestToClient(body createClientRequest) domain.ClientCreateInput {
	return domain.ClientCreateInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     string(body.Email),
		Telephone: body.Telephone,
		Pesel:     body.Pesel,
	}
}

func clientToResponse(c domain.Client) clientResponse {
	return clientResponse{
		IdClient:  c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     openapi_types.Email(c.Email),
		Telephone: c.Telephone,
		Pesel:     c.Pesel,
	}
}

// clientTripToResponse converts a domain.ClientTrip; a nil PaymentDate is omitted.
func clientTripToResponse(t domain.ClientTrip) clientTripResponse {
	return clientTripResponse{
		IdTrip:       t.TripID,
		Name:         t.Name,
		Description:  t.Description,
		DateFrom:     openapi_types.Date{Time: t.DateFrom},
		DateTo:       openapi_types.Date{Time: t.DateTo},
		RegisteredAt: t.RegisteredAt,
		PaymentDate:  t.PaymentDate,
	}
}
