package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/culturematch/culturematch/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// logged and reported as a bare 500 to avoid leaking internals.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	switch {
	case domain.IsValidationError(err):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, domain.ErrNoTasteVector):
		writeJSON(w, r, http.StatusConflict, errorResponse{
			Message: "complete your vibe check before requesting matches",
		})
	default:
		logger.ErrorContext(ctx, "request failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "unable to write response", "error", err)
	}
}
