package handler

import (
	"net/http"
	"strconv"

	"github.com/tahiratravels/backend/internal/domain"
)

type guideRequest struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Location        string `json:"location"`
	Languages       string `json:"languages"`
	ExperienceYears int    `json:"experience_years"`
}

// GetTourGuide handles GET /tours/{id}/guide.
func (s *Server) GetTourGuide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	guide, err := s.svc.Guides.ForTour(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}

// AddTourGuide handles POST /tours/{id}/guides. Administrators only.
func (s *Server) AddTourGuide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	var body guideRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	created, err := s.svc.Guides.Add(r.Context(), domain.TourGuide{
		Name:            body.Name,
		Age:             body.Age,
		Location:        body.Location,
		Languages:       body.Languages,
		ExperienceYears: body.ExperienceYears,
		TourID:          id,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/guides/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, created)
}

// GetGuide handles GET /guides/{id}.
func (s *Server) GetGuide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	guide, err := s.svc.Guides.ByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, guide)
}
