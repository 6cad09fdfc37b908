// Package middleware provides reusable HTTP middleware for the Tahira Travels API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that answers preflights and sets CORS
// headers for the given origins (scheme and host, no trailing slash).
// Browsers may send bearer tokens and read the Location header of created
// resources and the rate limiter's Retry-After.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Location", "Retry-After"},
		MaxAge:         600,
	})
	return c.Handler
}
