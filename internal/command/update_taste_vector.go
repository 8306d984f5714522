package command

import (
	"context"
	"fmt"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// UpdateTasteVectorRequest is the request for the UpdateTasteVector command.
type UpdateTasteVectorRequest struct {
	UserID string
}

// UpdateTasteVectorConfig holds configuration for taste vector updates.
type UpdateTasteVectorConfig struct {
	// Dimension is the width of the stored vectors. Users with no taste
	// signal get a zero vector of this width.
	Dimension int
}

// UpdateTasteVector rebuilds a user's taste vector from their current
// profile and stores it in the vector index. It should be called after
// any interaction or vibe check change.
type UpdateTasteVector struct {
	Profiles datasources.TasteProfileGetter
	Embedder datasources.Embedder
	Vectors  datasources.UserVectorUpserter
	Config   UpdateTasteVectorConfig
}

// NewUpdateTasteVector creates a properly initialized UpdateTasteVector command.
func NewUpdateTasteVector(
	profiles datasources.TasteProfileGetter,
	embedder datasources.Embedder,
	vectors datasources.UserVectorUpserter,
	config UpdateTasteVectorConfig,
) *UpdateTasteVector {
	return &UpdateTasteVector{
		Profiles: profiles,
		Embedder: embedder,
		Vectors:  vectors,
		Config:   config,
	}
}

// Execute regenerates and stores the taste vector for a single user.
func (c *UpdateTasteVector) Execute(ctx context.Context, req UpdateTasteVectorRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	profile, err := c.Profiles.GetTasteProfile(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("getting taste profile: %w", err)
	}

	text := profile.Text()

	var vector []float32
	if text == "" {
		// No taste signal at all. A zero vector keeps the user present in
		// the index while guaranteeing a zero similarity to everyone.
		vector = make([]float32, c.Config.Dimension)
	} else {
		vector, err = c.Embedder.EmbedText(ctx, text)
		if err != nil {
			return Empty{}, fmt.Errorf("embedding taste text: %w", err)
		}
	}

	if err := c.Vectors.UpsertUserVector(ctx, req.UserID, vector); err != nil {
		return Empty{}, fmt.Errorf("storing taste vector: %w", err)
	}

	logger.DebugContext(ctx, "updated taste vector", "user_id", req.UserID, "dimension", len(vector))
	return Empty{}, nil
}
