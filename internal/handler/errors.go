package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tahiratravels/backend/internal/domain"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorKinds maps domain sentinels to HTTP statuses, most specific first.
var errorKinds = []struct {
	kind   error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
}

// writeError translates err into a JSON error response. Classified errors
// carry their user-facing message; anything else becomes an opaque 500 and
// is logged with the request id.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			writeJSON(w, k.status, errorResponse{Error: errorDetail{Code: k.code, Message: messageOf(err, k.kind)}})
			return
		}
	}

	s.logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", chimiddleware.GetReqID(r.Context()),
	)
	message := "internal server error"
	var derr *domain.Error
	if errors.As(err, &derr) {
		message = derr.Message
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorDetail{Code: "internal_error", Message: message}})
}

// writeRequestError rejects a request that never reached the service layer
// (malformed body, unparsable parameter).
func writeRequestError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: errorDetail{Code: "payload_too_large", Message: "request body too large"}})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{Code: "validation_error", Message: err.Error()}})
}

// messageOf prefers the message of a *domain.Error and falls back to the
// sentinel's own text, never leaking the wrapping prefixes.
func messageOf(err, kind error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	return kind.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
