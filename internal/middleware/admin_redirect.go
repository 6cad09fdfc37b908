package middleware

import (
	"net/http"

	"github.com/tahiratravels/backend/internal/auth"
)

// NewAdminRedirect returns a middleware that sends authenticated callers in
// role to target when they request the site root. Everyone else, and every
// other path, passes through untouched.
//
// Wire it after the authenticator so the principal is in the context.
func NewAdminRedirect(role, target string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				if p, ok := auth.FromContext(r.Context()); ok && p.HasRole(role) {
					http.Redirect(w, r, target, http.StatusFound)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
