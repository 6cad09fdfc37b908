package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
)

type roleRequest struct {
	Role string `json:"role"`
}

type assignedResponse struct {
	Assigned bool `json:"assigned"`
}

// ListUsers handles GET /admin/users: every user except the caller, with roles.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	board, err := s.svc.Users.ManagementBoard(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// AssignRole handles POST /admin/users/{id}/roles.
// User ids are opaque strings, so the path segment is taken as-is.
func (s *Server) AssignRole(w http.ResponseWriter, r *http.Request) {
	var body roleRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	ok, err := s.svc.Users.AssignRole(r.Context(), domain.RoleAssignment{
		UserID: chi.URLParam(r, "id"),
		Role:   body.Role,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assignedResponse{Assigned: ok})
}
