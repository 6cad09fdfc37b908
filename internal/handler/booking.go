package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
)

// bookingRequest is the body of POST /bookings. Any owner the client
// supplies is ignored: the booking always belongs to the caller.
type bookingRequest struct {
	TourID         int64              `json:"tour_id"`
	NumberOfPeople int                `json:"number_of_people"`
	BookingDate    openapi_types.Date `json:"booking_date"`
}

// ListBookings handles GET /bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.svc.Bookings.ListForUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body bookingRequest
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, err)
		return
	}

	created, err := s.svc.Bookings.Create(r.Context(), domain.Booking{
		TourID:         body.TourID,
		NumberOfPeople: body.NumberOfPeople,
		BookingDate:    body.BookingDate.Time,
	}, auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteBooking handles DELETE /bookings/{id}.
// A missing booking and someone else's booking both answer 404.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeRequestError(w, err)
		return
	}

	ok, err := s.svc.Bookings.Delete(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorDetail{Code: "not_found", Message: "Booking not found!"}})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
