// Package handler implements the HTTP handlers for the trip registry API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trips.go, clients.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-registry/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	List(ctx context.Context) ([]domain.Trip, error)
}

// ClientServicer defines the client and registration operations the client
// handlers depend on.
type ClientServicer interface {
	Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error)
	ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
	RegisterForTrip(ctx context.Context, clientID, tripID int, in domain.RegisterInput) error
	CancelRegistration(ctx context.Context, clientID, tripID int) (bool, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	trips   TripServicer
	clients ClientServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, clients ClientServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, clients: clients, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns a chi router with every API route registered.
// main.go mounts it behind the middleware chain; tests drive it directly.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/trips", s.ListTrips)
		r.Post("/clients", s.CreateClient)
		r.Get("/clients/{idClient}/trips", s.ListClientTrips)
		r.Put("/clients/{idClient}/trips/{idTrip}", s.RegisterClientForTrip)
		r.Delete("/clients/{idClient}/trips/{idTrip}", s.DeleteRegistration)
	})

	return r
}
