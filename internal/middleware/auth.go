package middleware

import (
	"net/http"
	"strings"

	"github.com/tahiratravels/backend/internal/auth"
)

// TokenParser turns a bearer token into the principal it was issued for.
type TokenParser interface {
	Parse(raw string) (auth.Principal, error)
}

// NewAuthenticator returns a middleware that reads an optional
// "Authorization: Bearer <token>" header and stores the caller's principal in
// the request context. Requests without the header pass through anonymously;
// requests with a malformed, forged or expired token are rejected with 401.
func NewAuthenticator(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "malformed Authorization header")
				return
			}

			p, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.FromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and callers outside role with 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.FromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}
			if !p.HasRole(role) {
				writeError(w, http.StatusForbidden, "forbidden", "requires the "+role+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
