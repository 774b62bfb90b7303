package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Asad-NCS/lostandfound/internal/common"
	"github.com/Asad-NCS/lostandfound/internal/domain"
	"github.com/Asad-NCS/lostandfound/internal/server/claims"
	"github.com/Asad-NCS/lostandfound/internal/server/items"
	"github.com/Asad-NCS/lostandfound/internal/server/users"
	"github.com/Asad-NCS/lostandfound/internal/server/verifications"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error(context.Background(), "error encoding response", "error", err)
	}
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps a service error to its HTTP status and sends the error
// text to the client. Unclassified errors are logged and masked.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		msg = "Something went wrong. Please try again."
	}
	s.writeErrorMsg(w, status, msg)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrNotReporter),
		errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, users.ErrUsernameTaken),
		errors.Is(err, users.ErrEmailInUse),
		errors.Is(err, claims.ErrDuplicateClaim),
		errors.Is(err, domain.ErrOwnItem),
		errors.Is(err, domain.ErrItemIsLost),
		errors.Is(err, domain.ErrItemClaimed),
		errors.Is(err, domain.ErrClaimNotPending),
		errors.Is(err, domain.ErrClaimNotForwarded):
		return http.StatusConflict
	case errors.Is(err, users.ErrMissingFields),
		errors.Is(err, users.ErrPasswordTooShort),
		errors.Is(err, items.ErrMissingFields),
		errors.Is(err, items.ErrInvalidStatus),
		errors.Is(err, claims.ErrMissingDescription),
		errors.Is(err, verifications.ErrInvalidCode),
		errors.Is(err, verifications.ErrCodeExpired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
