package handler

import (
	"errors"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
)

// tourRequest is the body of POST /tours and PUT /tours/{id}.
type tourRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ImageURL    string             `json:"image_url"`
	CategoryID  int64              `json:"category_id"`
	CreatedOn   openapi_types.Date `json:"created_on"`
}

func (b tourRequest) toInput() domain.TourInput {
	return domain.TourInput{
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		CategoryID:  b.CategoryID,
		CreatedOn:   b.CreatedOn.Time,
	}
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type tourListResponse struct {
	Data       []domain.TourSummary `json:"data"`
	Pagination pagination           `json:"pagination"`
}

// tourDetailsResponse composes the details page: the tour, its reviews,
// whether the caller may review it, and its guide (null when none).
type tourDetailsResponse struct {
	Tour      domain.TourDetails  `json:"tour"`
	Reviews   []domain.ReviewView `json:"reviews"`
	CanReview bool                `json:"can_review"`
	Guide     *domain.TourGuide   `json:"guide"`
}

type savedResponse struct {
	Saved bool `json:"saved"`
}

// ListTours handles GET /tours.
// Supports ?search=, ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	search, err := queryString(r, "search")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	filter := domain.TourFilter{Search: search, Page: domain.NewPaginationParams(page, limit)}
	tours, total, err := s.svc.Tours.List(r.Context(), auth.UserID(r.Context()), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tourListResponse{
		Data:       tours,
		Pagination: pagination{Page: filter.Page.Page, Limit: filter.Page.Limit, Total: total},
	})
}

// CreateTour handles POST /tours.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	var body tourRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	created, err := s.svc.Tours.Create(r.Context(), body.toInput(), auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/tours/"+strconv.FormatInt(created.ID, 10))
	writeJSON(w, http.StatusCreated, created)
}

// GetTour handles GET /tours/{id}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	ctx := r.Context()
	userID := auth.UserID(ctx)

	details, err := s.svc.Tours.Details(ctx, id, userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	reviews, err := s.svc.Reviews.ListForTour(ctx, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	canReview, err := s.svc.Reviews.CanReview(ctx, id, userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := tourDetailsResponse{Tour: details, Reviews: reviews, CanReview: canReview}
	guide, err := s.svc.Guides.ForTour(ctx, id)
	switch {
	case err == nil:
		resp.Guide = &guide
	case !errors.Is(err, domain.ErrNotFound):
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTourForEdit handles GET /tours/{id}/edit.
func (s *Server) GetTourForEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	form, err := s.svc.Tours.GetForEdit(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

// UpdateTour handles PUT /tours/{id}.
func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}
	var body tourRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	if err := s.svc.Tours.Edit(r.Context(), id, body.toInput(), auth.UserID(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTourForDelete handles GET /tours/{id}/delete.
func (s *Server) GetTourForDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	view, err := s.svc.Tours.GetForDelete(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// DeleteTour handles DELETE /tours/{id}.
func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	if err := s.svc.Tours.Delete(r.Context(), id, auth.UserID(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites handles GET /tours/favorites.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.svc.Tours.Favorites(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// GetFavorite handles GET /tours/{id}/favorite.
func (s *Server) GetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	saved, err := s.svc.Tours.IsSaved(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, savedResponse{Saved: saved})
}

// SaveFavorite handles PUT /tours/{id}/favorite.
func (s *Server) SaveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	if err := s.svc.Tours.Save(r.Context(), id, auth.UserID(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /tours/{id}/favorite.
func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	if err := s.svc.Tours.RemoveFavorite(r.Context(), id, auth.UserID(r.Context())); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
