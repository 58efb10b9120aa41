package httpx

import (
	"net/http"
	"strings"

	"biblioteca/internal/platform/crypto"
)

// RequireAnyRole guards a route with a required-role set. The caller's
// bearer token is parsed here and the claims are placed on the request
// context for downstream handlers and the access log.
//
// Missing, malformed, expired and role-mismatched credentials are all
// answered with 403: the catalog surface distinguishes callers only by
// role, so an anonymous caller is simply a caller with no granted role.
func RequireAnyRole(secret string, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Access denied", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Access denied", nil)
				return
			}

			if !allowed[claims.Role] {
				JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Access denied", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
