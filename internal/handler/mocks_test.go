package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-registry/internal/domain"
	"github.com/pkordes/trip-registry/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	list func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

// mockClientServicer is a test double for handler.ClientServicer.
type mockClientServicer struct {
	create             func(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error)
	listTrips          func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
	registerForTrip    func(ctx context.Context, clientID, tripID int, in domain.RegisterInput) error
	cancelRegistration func(ctx context.Context, clientID, tripID int) (bool, error)
}

func (m *mockClientServicer) Create(ctx context.Context, in domain.ClientCreateInput) (domain.Client, error) {
	return m.create(ctx, in)
}
func (m *mockClientServicer) ListTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listTrips(ctx, clientID)
}
func (m *mockClientServicer) RegisterForTrip(ctx context.Context, clientID, tripID int, in domain.RegisterInput) error {
	return m.registerForTrip(ctx, clientID, tripID, in)
}
func (m *mockClientServicer) CancelRegistration(ctx context.Context, clientID, tripID int) (bool, error) {
	return m.cancelRegistration(ctx, clientID, tripID)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer   = (*mockTripServicer)(nil)
	_ handler.ClientServicer = (*mockClientServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// errorBody mirrors the JSON error envelope written by every failing handler.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// serve runs one request through the router of a Server built from the mocks.
func serve(trips handler.TripServicer, clients handler.ClientServicer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.NewServer(trips, clients, nil).Routes().ServeHTTP(rec, req)
	return rec
}
