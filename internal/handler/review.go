package handler

import (
	"net/http"

	"github.com/tahiratravels/backend/internal/auth"
)

type reviewRequest struct {
	Comment string `json:"comment"`
}

// ListReviews handles GET /tours/{id}/reviews.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	reviews, err := s.svc.Reviews.ListForTour(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// AddReview handles POST /tours/{id}/reviews.
// Callers who never booked the tour get 403.
func (s *Server) AddReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	var body reviewRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	review, err := s.svc.Reviews.Add(r.Context(), id, auth.UserID(r.Context()), body.Comment)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}
