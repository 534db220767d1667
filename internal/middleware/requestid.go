package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader is read from incoming requests and echoed on every response.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen caps how much of a caller-supplied ID is trusted.
const maxRequestIDLen = 128

// RequestID assigns every request an ID and stores it under
// chimiddleware.RequestIDKey, so chimiddleware.GetReqID and NewSlogLogger
// pick it up. An ID supplied in X-Request-Id is kept; otherwise a random
// UUID is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
