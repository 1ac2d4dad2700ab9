package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
)

// Context keys for storing request credentials
type contextKey string

const (
	// BearerTokenKey holds the raw bearer token extracted from the request
	BearerTokenKey contextKey = "bearer_token"
)

// BearerTokenMiddleware extracts the opaque bearer token for protected routes.
// It only checks that a token is present and well-formed; resolving it to an
// account is the service layer's job, so each operation pays exactly one
// indexed lookup and unresolvable tokens fail inside the operation itself.
type BearerTokenMiddleware struct{}

// NewBearerTokenMiddleware creates a new bearer token middleware
func NewBearerTokenMiddleware() *BearerTokenMiddleware {
	return &BearerTokenMiddleware{}
}

// RequireToken ensures the request carries an Authorization bearer token
// If missing or malformed, returns 401
// If present, injects the raw token into the request context
func (m *BearerTokenMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		// Must be Bearer token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if token == "" {
			writeAuthError(w, "Empty bearer token")
			return
		}

		ctx := context.WithValue(r.Context(), BearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetBearerToken extracts the raw bearer token from the request context
// Returns empty string if the request carried none
func GetBearerToken(r *http.Request) string {
	token, _ := r.Context().Value(BearerTokenKey).(string)
	return token
}

// SetTestBearerToken sets the bearer token in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated requests
func SetTestBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, BearerTokenKey, token)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
