package command

import (
	"context"
	"fmt"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// RefreshAllVectorsRequest is the request for the RefreshAllVectors command.
// This command takes no parameters beyond context.
type RefreshAllVectorsRequest struct{}

// RefreshAllVectorsResult reports per-user outcomes of a batch refresh.
type RefreshAllVectorsResult struct {
	SuccessCount int
	FailCount    int
}

// RefreshAllVectors rebuilds the taste vector for every user. Intended
// for backfills and embedding model migrations; a single user failing
// does not abort the batch.
type RefreshAllVectors struct {
	Users           datasources.UserIDLister
	UpdateVectorCmd *UpdateTasteVector
}

// NewRefreshAllVectors creates a properly initialized RefreshAllVectors command.
func NewRefreshAllVectors(
	users datasources.UserIDLister,
	updateVectorCmd *UpdateTasteVector,
) *RefreshAllVectors {
	return &RefreshAllVectors{
		Users:           users,
		UpdateVectorCmd: updateVectorCmd,
	}
}

// Execute refreshes the taste vector for all users.
func (c *RefreshAllVectors) Execute(
	ctx context.Context, _ RefreshAllVectorsRequest,
) (RefreshAllVectorsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	userIDs, err := c.Users.ListUserIDs(ctx)
	if err != nil {
		return RefreshAllVectorsResult{}, fmt.Errorf("listing users: %w", err)
	}

	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no users to refresh")
		return RefreshAllVectorsResult{}, nil
	}

	logger.InfoContext(ctx, "starting taste vector refresh", "user_count", len(userIDs))

	var result RefreshAllVectorsResult
	for _, userID := range userIDs {
		if _, err := c.UpdateVectorCmd.Execute(ctx, UpdateTasteVectorRequest{UserID: userID}); err != nil {
			logger.ErrorContext(ctx, "failed to refresh taste vector for user",
				"user_id", userID, "error", err)
			result.FailCount++
			continue
		}
		result.SuccessCount++
	}

	logger.InfoContext(ctx, "taste vector refresh complete",
		"success_count", result.SuccessCount, "fail_count", result.FailCount)

	return result, nil
}
