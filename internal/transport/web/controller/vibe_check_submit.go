package controller

import (
	"encoding/json"
	"net/http"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

type VibeCheckSubmit struct {
	Command command.Command[command.SubmitVibeCheckRequest, command.Empty]
}

type VibeCheckSubmitRequest struct {
	Answers map[string]string `json:"answers"`
}

func (c VibeCheckSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body VibeCheckSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "invalid vibe check body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, err := c.Command.Execute(ctx, command.SubmitVibeCheckRequest{
		UserID:  userID,
		Answers: body.Answers,
	}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
