package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

type MatchGet struct {
	Getter datasources.MatchGetter
}

func (c MatchGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	match, err := c.Getter.GetMatch(ctx, mux.Vars(r)["match_id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Non-participants don't learn the match exists.
	if !match.Involves(userID) {
		writeError(w, r, domain.ErrNotFound)
		return
	}

	writeJSON(w, r, http.StatusOK, match)
}
