package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/middleware"
)

// Routes returns the API router. It expects the authenticator middleware to
// have run already, so routes can require a principal.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.GetHome)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Post("/auth/register", s.Register)
	r.Post("/auth/login", s.Login)

	r.Get("/categories", s.ListCategories)
	r.Get("/guides/{id}", s.GetGuide)

	r.Route("/tours", func(r chi.Router) {
		r.Get("/", s.ListTours)
		r.Get("/{id}", s.GetTour)
		r.Get("/{id}/reviews", s.ListReviews)
		r.Get("/{id}/guide", s.GetTourGuide)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/", s.CreateTour)
			r.Get("/favorites", s.ListFavorites)
			r.Get("/{id}/edit", s.GetTourForEdit)
			r.Put("/{id}", s.UpdateTour)
			r.Get("/{id}/delete", s.GetTourForDelete)
			r.Delete("/{id}", s.DeleteTour)
			r.Get("/{id}/favorite", s.GetFavorite)
			r.Put("/{id}/favorite", s.SaveFavorite)
			r.Delete("/{id}/favorite", s.RemoveFavorite)
			r.Post("/{id}/reviews", s.AddReview)
		})

		r.With(middleware.RequireRole(domain.RoleAdmin)).Post("/{id}/guides", s.AddTourGuide)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", s.ListBookings)
		r.Post("/", s.CreateBooking)
		r.Delete("/{id}", s.DeleteBooking)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(domain.RoleAdmin))
		r.Get("/users", s.ListUsers)
		r.Post("/users/{id}/roles", s.AssignRole)
	})

	return r
}
