package controller

import (
	"encoding/json"
	"net/http"

	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

type InteractionLog struct {
	Command command.Command[command.LogInteractionRequest, domain.Interaction]
}

type InteractionLogRequest struct {
	ExternalID string   `json:"external_id"`
	MediaType  string   `json:"media_type"`
	Title      string   `json:"title"`
	ImageURL   string   `json:"image_url"`
	Genres     []string `json:"genres"`
	Kind       string   `json:"interaction_kind"`
	Rating     *float64 `json:"rating"`
	ReviewText string   `json:"review_text"`
}

func (c InteractionLog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body InteractionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "invalid interaction body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	interaction, err := c.Command.Execute(ctx, command.LogInteractionRequest{
		UserID:     userID,
		ExternalID: body.ExternalID,
		MediaType:  domain.MediaType(body.MediaType),
		Title:      body.Title,
		ImageURL:   body.ImageURL,
		Genres:     body.Genres,
		Kind:       domain.InteractionKind(body.Kind),
		Rating:     body.Rating,
		ReviewText: body.ReviewText,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, interaction)
}
