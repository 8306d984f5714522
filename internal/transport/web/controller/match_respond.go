package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

type MatchRespond struct {
	Command command.Command[command.RespondToMatchRequest, domain.Match]
}

type MatchRespondRequest struct {
	Accept bool `json:"accept"`
}

func (c MatchRespond) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	matchID := mux.Vars(r)["match_id"]

	var body MatchRespondRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "invalid respond body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	match, err := c.Command.Execute(ctx, command.RespondToMatchRequest{
		MatchID: matchID,
		UserID:  userID,
		Accept:  body.Accept,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, match)
}
