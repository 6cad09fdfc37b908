// Package domain contains the core data types for the Tahira Travels application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Category groups tours (e.g. "Beach Escapes", "City Breaks").
// Categories are reference data seeded by migration and never edited through the API.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,min=3,max=20"`
}
