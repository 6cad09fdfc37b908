// Package auth holds the caller identity carried through a request, the JWT
// issuer/parser that produces it, and password hashing.
package auth

import (
	"context"
	"slices"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID   string
	UserName string
	Roles    []string
}

// HasRole reports whether the principal is in the named role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// UserID returns the caller's id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	p, _ := FromContext(ctx)
	return p.UserID
}
