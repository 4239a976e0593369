package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/snapspot-api/internal/boundary"
	jwtinfra "github.com/snapspot-api/internal/infrastructure/jwt"
)

type contextKey string

const ClaimsKey contextKey = "claims"

func unauthorized(w http.ResponseWriter, msg string) {
	writeJSONError(w, boundary.Unauthorized.HTTPStatus(), msg)
}

// Auth returns middleware that validates the Bearer JWT and injects claims
// into the request context.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authorization header missing")
				return
			}
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				unauthorized(w, "Invalid authorization format")
				return
			}
			claims, err := provider.Verify(token)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext extracts JWT claims from the request context.
func ClaimsFromContext(ctx context.Context) (*jwtinfra.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*jwtinfra.Claims)
	return c, ok
}
