package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/transport/web/controller"
)

type Commands struct {
	RunMatchingJob    *command.RunMatchingJob
	RespondToMatch    *command.RespondToMatch
	LogInteraction    *command.LogInteraction
	RemoveInteraction *command.RemoveInteraction
	SubmitVibeCheck   *command.SubmitVibeCheck
}

func MakeRouter(
	repository datasources.Repository,
	commands Commands,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/matches", requireAuthMiddleware(controller.MatchesList{
		Lister: repository,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/matches/discover", requireAuthMiddleware(controller.MatchesDiscover{
		Command: commands.RunMatchingJob,
	})).Methods(http.MethodPost, http.MethodOptions)

	// Registered after /discover so the literal path wins.
	r.Handle("/v1/matches/{match_id}", requireAuthMiddleware(controller.MatchGet{
		Getter: repository,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/matches/{match_id}/respond", requireAuthMiddleware(controller.MatchRespond{
		Command: commands.RespondToMatch,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/interactions", requireAuthMiddleware(controller.InteractionLog{
		Command: commands.LogInteraction,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/interactions/{media_id}/{kind}", requireAuthMiddleware(controller.InteractionRemove{
		Command: commands.RemoveInteraction,
	})).Methods(http.MethodDelete, http.MethodOptions)

	r.Handle("/v1/users/me/vibe-check", requireAuthMiddleware(controller.VibeCheckSubmit{
		Command: commands.SubmitVibeCheck,
	})).Methods(http.MethodPost, http.MethodOptions)

	return r, nil
}
