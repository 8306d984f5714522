package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// LogInteractionRequest is the request for the LogInteraction command.
// The media item is identified by its external catalog ID plus type and
// created on first sight.
type LogInteractionRequest struct {
	UserID     string
	ExternalID string
	MediaType  domain.MediaType
	Title      string
	ImageURL   string
	Genres     []string
	Kind       domain.InteractionKind
	Rating     *float64
	ReviewText string
}

// LogInteraction records a user's interaction with a media item and
// refreshes their taste vector afterwards.
type LogInteraction struct {
	MediaItems      datasources.MediaItemUpserter
	Interactions    datasources.InteractionStore
	UpdateVectorCmd *UpdateTasteVector
}

// NewLogInteraction creates a properly initialized LogInteraction command.
func NewLogInteraction(
	mediaItems datasources.MediaItemUpserter,
	interactions datasources.InteractionStore,
	updateVectorCmd *UpdateTasteVector,
) *LogInteraction {
	return &LogInteraction{
		MediaItems:      mediaItems,
		Interactions:    interactions,
		UpdateVectorCmd: updateVectorCmd,
	}
}

// Execute validates and upserts the interaction. A successful write with
// a failed vector refresh still succeeds; the vector catches up on the
// next write.
func (c *LogInteraction) Execute(ctx context.Context, req LogInteractionRequest) (domain.Interaction, error) {
	logger := domain.LoggerFromContext(ctx)

	if !req.MediaType.Valid() {
		return domain.Interaction{}, domain.NewValidationError("media_type", "unknown media type")
	}
	if !req.Kind.Valid() {
		return domain.Interaction{}, domain.NewValidationError("interaction_kind", "unknown interaction kind")
	}
	if req.ExternalID == "" {
		return domain.Interaction{}, domain.NewValidationError("external_id", "must not be empty")
	}
	if req.Title == "" {
		return domain.Interaction{}, domain.NewValidationError("title", "must not be empty")
	}
	if req.Rating != nil {
		if err := domain.ValidateRating(*req.Rating); err != nil {
			return domain.Interaction{}, err
		}
	}

	item, err := c.MediaItems.FindOrCreateMediaItem(ctx, domain.MediaItem{
		ID:         uuid.NewString(),
		ExternalID: req.ExternalID,
		Type:       req.MediaType,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		Genres:     req.Genres,
	})
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("resolving media item: %w", err)
	}

	if req.Kind == domain.InteractionTop4 {
		if err := c.checkTop4Capacity(ctx, req.UserID, item); err != nil {
			return domain.Interaction{}, err
		}
	}

	interaction, err := c.Interactions.UpsertInteraction(ctx, domain.Interaction{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		MediaID:    item.ID,
		Kind:       req.Kind,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("upserting interaction: %w", err)
	}

	if _, err := c.UpdateVectorCmd.Execute(ctx, UpdateTasteVectorRequest{UserID: req.UserID}); err != nil {
		logger.WarnContext(ctx, "failed to refresh taste vector after interaction",
			"user_id", req.UserID, "error", err)
	}

	return interaction, nil
}

// checkTop4Capacity rejects a new top4 slot when the user's four slots
// for that media type are taken. Re-logging an existing top4 item is an
// update, not a new slot.
func (c *LogInteraction) checkTop4Capacity(
	ctx context.Context, userID string, item domain.MediaItem,
) error {
	_, err := c.Interactions.GetInteraction(ctx, userID, item.ID, domain.InteractionTop4)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("checking existing top4 interaction: %w", err)
	}

	count, err := c.Interactions.CountTop4(ctx, userID, item.Type)
	if err != nil {
		return fmt.Errorf("counting top4 interactions: %w", err)
	}
	if count >= domain.Top4Capacity {
		return domain.NewValidationError("interaction_kind",
			fmt.Sprintf("top4 is full for media type %q", item.Type))
	}
	return nil
}
