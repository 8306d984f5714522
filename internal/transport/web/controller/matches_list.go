package controller

import (
	"net/http"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

type MatchesList struct {
	Lister datasources.MatchLister
}

type MatchesListResponse struct {
	Data []domain.Match `json:"data"`
}

func (c MatchesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	status := domain.MatchStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, r, domain.NewValidationError("status", "unknown match status"))
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "invalid pagination", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	matches, err := c.Lister.ListUserMatches(ctx, userID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	matches = paginate(matches, page, pageSize)
	if matches == nil {
		matches = []domain.Match{}
	}

	writeJSON(w, r, http.StatusOK, MatchesListResponse{Data: matches})
}
