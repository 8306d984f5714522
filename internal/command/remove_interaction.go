package command

import (
	"context"
	"fmt"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// RemoveInteractionRequest is the request for the RemoveInteraction command.
type RemoveInteractionRequest struct {
	UserID  string
	MediaID string
	Kind    domain.InteractionKind
}

// RemoveInteraction deletes a user's interaction and refreshes their
// taste vector afterwards.
type RemoveInteraction struct {
	Interactions    datasources.InteractionDeleter
	UpdateVectorCmd *UpdateTasteVector
}

// NewRemoveInteraction creates a properly initialized RemoveInteraction command.
func NewRemoveInteraction(
	interactions datasources.InteractionDeleter,
	updateVectorCmd *UpdateTasteVector,
) *RemoveInteraction {
	return &RemoveInteraction{
		Interactions:    interactions,
		UpdateVectorCmd: updateVectorCmd,
	}
}

// Execute deletes the interaction. Missing interactions are reported as
// domain.ErrNotFound by the store.
func (c *RemoveInteraction) Execute(ctx context.Context, req RemoveInteractionRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	if !req.Kind.Valid() {
		return Empty{}, domain.NewValidationError("interaction_kind", "unknown interaction kind")
	}

	if err := c.Interactions.DeleteInteraction(ctx, req.UserID, req.MediaID, req.Kind); err != nil {
		return Empty{}, fmt.Errorf("deleting interaction: %w", err)
	}

	if _, err := c.UpdateVectorCmd.Execute(ctx, UpdateTasteVectorRequest{UserID: req.UserID}); err != nil {
		logger.WarnContext(ctx, "failed to refresh taste vector after removal",
			"user_id", req.UserID, "error", err)
	}

	return Empty{}, nil
}
