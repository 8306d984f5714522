package milvus

import (
	"context"
	"fmt"
	"strings"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/culturematch/culturematch/internal/datasources"
)

var _ datasources.VectorRepository = (*Client)(nil)

const candidateOverfetchFactor = 2

const (
	userIDField = "user_id"
	vectorField = "vector"
)

// Client stores one taste vector per user in a Milvus collection.
// Alternate vector store driver to Pinecone; same contract.
type Client struct {
	milvus     client.Client
	collection string
	dimension  int
}

func NewClient(ctx context.Context, addr, collection string, dimension int) (*Client, error) {
	c, err := client.NewGrpcClient(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to milvus [%s]: %w", addr, err)
	}

	return &Client{
		milvus:     c,
		collection: collection,
		dimension:  dimension,
	}, nil
}

func (c *Client) GetUserVector(ctx context.Context, userID string) ([]float32, error) {
	expr := fmt.Sprintf("%s == %q", userIDField, userID)

	result, err := c.milvus.Query(
		ctx,
		c.collection,
		nil,
		expr,
		[]string{userIDField, vectorField},
	)
	if err != nil {
		return nil, fmt.Errorf("querying milvus for user vector [%s]: %w", userID, err)
	}

	for _, column := range result {
		vectors, ok := column.(*entity.ColumnFloatVector)
		if !ok {
			continue
		}
		if vectors.Len() == 0 {
			return nil, nil
		}
		return vectors.Data()[0], nil
	}

	return nil, nil
}

func (c *Client) UpsertUserVector(ctx context.Context, userID string, vector []float32) error {
	_, err := c.milvus.Upsert(
		ctx,
		c.collection,
		"",
		entity.NewColumnVarChar(userIDField, []string{userID}),
		entity.NewColumnFloatVector(vectorField, c.dimension, [][]float32{vector}),
	)
	if err != nil {
		return fmt.Errorf("upserting vector for user [%s]: %w", userID, err)
	}
	return nil
}

func (c *Client) FindCandidates(
	ctx context.Context,
	queryVector []float32,
	excludeUserIDs []string,
	fanout int,
) ([]datasources.Candidate, error) {
	if fanout <= 0 {
		return nil, nil
	}

	sp, err := entity.NewIndexIvfFlatSearchParam(10)
	if err != nil {
		return nil, fmt.Errorf("creating search params: %w", err)
	}

	results, err := c.milvus.Search(
		ctx,
		c.collection,
		nil,
		exclusionExpr(excludeUserIDs),
		[]string{userIDField},
		[]entity.Vector{entity.FloatVector(queryVector)},
		vectorField,
		entity.COSINE,
		fanout*candidateOverfetchFactor,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("searching milvus for candidates: %w", err)
	}

	excluded := make(map[string]struct{}, len(excludeUserIDs))
	for _, id := range excludeUserIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]datasources.Candidate, 0, fanout)
	for _, result := range results {
		ids, ok := result.IDs.(*entity.ColumnVarChar)
		if !ok {
			continue
		}
		for i := 0; i < ids.Len() && len(candidates) < fanout; i++ {
			id := ids.Data()[i]
			if _, skip := excluded[id]; skip {
				continue
			}
			candidates = append(candidates, datasources.Candidate{
				UserID:     id,
				Similarity: float64(result.Scores[i]),
			})
		}
	}

	return candidates, nil
}

func exclusionExpr(excludeUserIDs []string) string {
	if len(excludeUserIDs) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(excludeUserIDs))
	for _, id := range excludeUserIDs {
		quoted = append(quoted, fmt.Sprintf("%q", id))
	}
	return fmt.Sprintf("%s not in [%s]", userIDField, strings.Join(quoted, ", "))
}
