package datasources

import "context"

// Candidate is a nearby user returned by the similarity index, with its
// cosine similarity to the query vector.
type Candidate struct {
	UserID     string
	Similarity float64
}

// CandidateFinder retrieves candidate users ordered by descending vector
// similarity. Implementations over-fetch from the underlying index to
// compensate for post-filtering; the exclude set is authoritative and
// candidates without a stored vector are dropped unconditionally.
type CandidateFinder interface {
	FindCandidates(
		ctx context.Context,
		queryVector []float32,
		excludeUserIDs []string,
		fanout int,
	) ([]Candidate, error)
}

// UserVectorGetter fetches a user's current taste vector.
// Returns nil, nil when the user has no vector yet.
type UserVectorGetter interface {
	GetUserVector(ctx context.Context, userID string) ([]float32, error)
}

// UserVectorUpserter replaces a user's stored taste vector wholesale.
type UserVectorUpserter interface {
	UpsertUserVector(ctx context.Context, userID string, vector []float32) error
}

// VectorRepository combines all vector store operations.
type VectorRepository interface {
	CandidateFinder
	UserVectorGetter
	UserVectorUpserter
}

// NullVectorRepository is a null implementation of VectorRepository.
type NullVectorRepository struct{}

var _ VectorRepository = NullVectorRepository{}

func (NullVectorRepository) FindCandidates(
	_ context.Context,
	_ []float32,
	_ []string,
	_ int,
) ([]Candidate, error) {
	return nil, nil
}

func (NullVectorRepository) GetUserVector(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (NullVectorRepository) UpsertUserVector(_ context.Context, _ string, _ []float32) error {
	return nil
}
