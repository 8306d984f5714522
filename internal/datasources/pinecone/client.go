package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/culturematch/culturematch/internal/datasources"
)

var _ datasources.VectorRepository = (*Client)(nil)

// candidateOverfetchFactor compensates for post-filtering of excluded
// candidates: the index is always asked for at least this many times
// the requested fanout.
const candidateOverfetchFactor = 2

const vectorNamespace = "taste"

// Client stores one taste vector per user in a Pinecone index, keyed by
// user ID.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(ctx context.Context, apiKey, indexName string) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: vectorNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) GetUserVector(ctx context.Context, userID string) ([]float32, error) {
	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.FetchVectors(ctx, []string{userID})
	if err != nil {
		return nil, fmt.Errorf("fetching vector for user [%s]: %w", userID, err)
	}

	vector, ok := resp.Vectors[userID]
	if !ok || vector == nil {
		return nil, nil
	}
	return vector.Values, nil
}

func (c *Client) UpsertUserVector(ctx context.Context, userID string, vector []float32) error {
	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	metadata, err := structpb.NewStruct(map[string]any{
		"user_id": userID,
	})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       userID,
		Values:   vector,
		Metadata: metadata,
	}})
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
	if fanout > 10000 {
		return nil, fmt.Errorf("fanout value too high [%d]", fanout)
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	filter, err := exclusionFilter(excludeUserIDs)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:         queryVector,
		TopK:           uint32(fanout * candidateOverfetchFactor),
		MetadataFilter: filter,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for candidate vectors: %w", err)
	}

	// The metadata filter already excludes at the storage layer, but the
	// caller's exclusion set is authoritative: filter again after
	// retrieval.
	excluded := make(map[string]struct{}, len(excludeUserIDs))
	for _, id := range excludeUserIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]datasources.Candidate, 0, fanout)
	for _, match := range resp.Matches {
		if match.Vector == nil {
			continue
		}
		if _, skip := excluded[match.Vector.Id]; skip {
			continue
		}
		candidates = append(candidates, datasources.Candidate{
			UserID:     match.Vector.Id,
			Similarity: float64(match.Score),
		})
		if len(candidates) >= fanout {
			break
		}
	}

	return candidates, nil
}

func exclusionFilter(excludeUserIDs []string) (*pinecone.MetadataFilter, error) {
	if len(excludeUserIDs) == 0 {
		return nil, nil
	}

	excluded := make([]any, 0, len(excludeUserIDs))
	for _, id := range excludeUserIDs {
		excluded = append(excluded, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"user_id": map[string]any{
			"$nin": excluded,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating exclusion filter: %w", err)
	}
	return filter, nil
}
