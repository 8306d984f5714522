package controller

import (
	"net/http"
	"strconv"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

type MatchesDiscover struct {
	Command command.Command[command.RunMatchingJobRequest, []domain.Match]
}

type MatchesDiscoverResponse struct {
	Data []domain.Match `json:"data"`
}

func (c MatchesDiscover) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var limit int
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			logger.ErrorContext(ctx, "invalid limit", "limit", rawLimit)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	matches, err := c.Command.Execute(ctx, command.RunMatchingJobRequest{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if matches == nil {
		matches = []domain.Match{}
	}

	writeJSON(w, r, http.StatusOK, MatchesDiscoverResponse{Data: matches})
}
