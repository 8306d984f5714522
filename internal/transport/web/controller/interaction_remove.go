package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

type InteractionRemove struct {
	Command command.Command[command.RemoveInteractionRequest, command.Empty]
}

func (c InteractionRemove) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	_, err := c.Command.Execute(ctx, command.RemoveInteractionRequest{
		UserID:  userID,
		MediaID: vars["media_id"],
		Kind:    domain.InteractionKind(vars["kind"]),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
