package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"devportal/internal/delivery/http/helpers"
	"devportal/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the caller's claims. Used by RequireAdmin.
func SetClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated caller's claims, if present.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.Claims)
	return c, ok && c != nil
}

// RequireAdmin returns a wrapper that validates the Bearer token, requires the admin role,
// and sets the claims in the request context. Missing or invalid tokens get 401; tokens
// without the admin role get 403. next is not called in either case.
func RequireAdmin(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if !claims.HasRole(domain.RoleAdmin) {
				logger.WarnContext(r.Context(), "non-admin caller", "path", r.URL.Path, "user_id", claims.UserID)
				helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "admin role required")
				return
			}
			next(w, r.WithContext(SetClaims(r.Context(), claims)))
		}
	}
}
