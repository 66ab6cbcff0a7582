package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/commforge/community_backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth validates the bearer token and, when a rate limiter is supplied,
// enforces the per-user budget for the authenticated caller.
func Auth(secret string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":"UNAUTHORIZED"}`, http.StatusUnauthorized)
				return
			}

			claims, err := security.ValidateJWT(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				http.Error(w, `{"error":"UNAUTHORIZED"}`, http.StatusUnauthorized)
				return
			}

			if limiter != nil && !limiter.AllowUser(claims.UserID) {
				http.Error(w, `{"error":"RATE_LIMIT_EXCEEDED"}`, http.StatusTooManyRequests)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the verified claims stored by Auth, or nil.
func ClaimsFrom(ctx context.Context) *security.Claims {
	claims, _ := ctx.Value(claimsKey).(*security.Claims)
	return claims
}
