package command

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// RunMatchingJobRequest is the request for the RunMatchingJob command.
type RunMatchingJobRequest struct {
	UserID string

	// Limit caps matches created by this run. Zero or negative means the
	// configured maximum.
	Limit int
}

// MatchingConfig holds configuration for match generation.
type MatchingConfig struct {
	// MinCompatibilityScore is the floor below which a candidate pair is
	// never persisted as a match.
	MinCompatibilityScore float64

	// MaxMatchesPerRun caps matches created by a single run.
	MaxMatchesPerRun int

	// SharedItemsPerMatch caps the shared items snapshotted onto a match.
	SharedItemsPerMatch int

	// ScoreConcurrency bounds concurrent candidate scoring.
	ScoreConcurrency int
}

// RunMatchingJob generates new matches for a user: it retrieves nearby
// candidates from the vector index, scores each pair, and persists the
// best pairs above the compatibility floor, each with an icebreaker
// seed message.
type RunMatchingJob struct {
	Vectors       datasources.UserVectorGetter
	Candidates    datasources.CandidateFinder
	MatchedUsers  datasources.MatchedUserIDsLister
	SharedCounter datasources.SharedItemCounter
	RatedOverlaps datasources.RatedOverlapLister
	SharedItems   datasources.SharedItemsLister
	MatchCreator  datasources.MatchCreator
	Rand          *rand.Rand
	Config        MatchingConfig
}

// NewRunMatchingJob creates a properly initialized RunMatchingJob command.
func NewRunMatchingJob(
	vectors datasources.UserVectorGetter,
	candidates datasources.CandidateFinder,
	matchedUsers datasources.MatchedUserIDsLister,
	sharedCounter datasources.SharedItemCounter,
	ratedOverlaps datasources.RatedOverlapLister,
	sharedItems datasources.SharedItemsLister,
	matchCreator datasources.MatchCreator,
	rng *rand.Rand,
	config MatchingConfig,
) *RunMatchingJob {
	return &RunMatchingJob{
		Vectors:       vectors,
		Candidates:    candidates,
		MatchedUsers:  matchedUsers,
		SharedCounter: sharedCounter,
		RatedOverlaps: ratedOverlaps,
		SharedItems:   sharedItems,
		MatchCreator:  matchCreator,
		Rand:          rng,
		Config:        config,
	}
}

type scoredCandidate struct {
	userID string
	score  float64
}

// Execute runs match generation for a single user and returns the
// matches created, best first.
func (c *RunMatchingJob) Execute(ctx context.Context, req RunMatchingJobRequest) ([]domain.Match, error) {
	logger := domain.LoggerFromContext(ctx)

	limit := req.Limit
	if limit <= 0 || limit > c.Config.MaxMatchesPerRun {
		limit = c.Config.MaxMatchesPerRun
	}

	userVector, err := c.Vectors.GetUserVector(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting user vector: %w", err)
	}
	if userVector == nil {
		return nil, fmt.Errorf("user [%s]: %w", req.UserID, domain.ErrNoTasteVector)
	}

	matchedUserIDs, err := c.MatchedUsers.ListMatchedUserIDs(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing matched users: %w", err)
	}
	exclude := append([]string{req.UserID}, matchedUserIDs...)

	// Fetch double the target so candidates dropped by the score floor
	// or a missing vector still leave enough to fill the run.
	candidates, err := c.Candidates.FindCandidates(ctx, userVector, exclude, limit*2)
	if err != nil {
		return nil, fmt.Errorf("finding candidates: %w", err)
	}
	if len(candidates) == 0 {
		logger.InfoContext(ctx, "no candidates found", "user_id", req.UserID)
		return nil, nil
	}

	scored, err := c.scoreCandidates(ctx, req.UserID, userVector, candidates)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	var matches []domain.Match
	for _, candidate := range scored {
		match, err := c.createMatch(ctx, req.UserID, candidate)
		if errors.Is(err, domain.ErrDuplicateMatch) {
			logger.WarnContext(ctx, "match already exists, skipping",
				"user_id", req.UserID, "candidate_id", candidate.userID)
			continue
		}
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}

	logger.InfoContext(ctx, "matching run complete",
		"user_id", req.UserID, "candidates", len(candidates), "matches_created", len(matches))

	return matches, nil
}

// scoreCandidates computes the compatibility score for each candidate
// and drops those below the floor. Candidates without a stored vector
// are dropped.
func (c *RunMatchingJob) scoreCandidates(
	ctx context.Context, userID string, userVector []float32, candidates []datasources.Candidate,
) ([]scoredCandidate, error) {
	logger := domain.LoggerFromContext(ctx)

	var mu sync.Mutex
	var scored []scoredCandidate

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(c.Config.ScoreConcurrency)

	for _, candidate := range candidates {
		grp.Go(func() error {
			candidateVector, err := c.Vectors.GetUserVector(grpCtx, candidate.UserID)
			if err != nil {
				return fmt.Errorf("getting candidate vector: %w", err)
			}
			if candidateVector == nil {
				logger.DebugContext(grpCtx, "candidate has no vector, skipping",
					"candidate_id", candidate.UserID)
				return nil
			}

			sharedCount, err := c.SharedCounter.CountSharedItems(grpCtx, userID, candidate.UserID)
			if err != nil {
				return fmt.Errorf("counting shared items: %w", err)
			}

			rated, err := c.RatedOverlaps.ListRatedOverlaps(grpCtx, userID, candidate.UserID)
			if err != nil {
				return fmt.Errorf("listing rated overlaps: %w", err)
			}

			stats := domain.ComputeOverlapStats(rated, sharedCount)
			score := domain.CompatibilityScore(userVector, candidateVector, stats.SharedCount, stats.AvgRatingDelta)
			if score < c.Config.MinCompatibilityScore {
				logger.DebugContext(grpCtx, "candidate below compatibility floor",
					"candidate_id", candidate.UserID, "score", score)
				return nil
			}

			mu.Lock()
			scored = append(scored, scoredCandidate{userID: candidate.UserID, score: score})
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// Scoring order is nondeterministic under concurrency; restore the
	// candidate order so equal scores keep their index ranking.
	index := make(map[string]int, len(candidates))
	for i, candidate := range candidates {
		index[candidate.UserID] = i
	}
	sort.Slice(scored, func(i, j int) bool {
		return index[scored[i].userID] < index[scored[j].userID]
	})

	return scored, nil
}

// createMatch snapshots shared items, generates an icebreaker, and
// persists the match with its seed message.
func (c *RunMatchingJob) createMatch(
	ctx context.Context, userID string, candidate scoredCandidate,
) (domain.Match, error) {
	shared, err := c.SharedItems.ListSharedItems(ctx, userID, candidate.userID, c.Config.SharedItemsPerMatch)
	if err != nil {
		return domain.Match{}, fmt.Errorf("listing shared items: %w", err)
	}

	icebreaker := domain.GenerateIcebreaker(shared, c.Rand)

	userA, userB := domain.NormalizePair(userID, candidate.userID)
	match := domain.Match{
		ID:                 uuid.NewString(),
		UserAID:            userA,
		UserBID:            userB,
		CompatibilityScore: candidate.score,
		SharedItems:        shared,
		Icebreaker:         icebreaker,
		Status:             domain.MatchStatusPending,
		CreatedAt:          time.Now(),
	}
	seedMessage := domain.Message{
		ID:        uuid.NewString(),
		MatchID:   match.ID,
		SenderID:  userID,
		Content:   icebreaker,
		IsSystem:  true,
		CreatedAt: match.CreatedAt,
	}

	if err := c.MatchCreator.CreateMatch(ctx, match, seedMessage); err != nil {
		if errors.Is(err, domain.ErrDuplicateMatch) {
			return domain.Match{}, err
		}
		return domain.Match{}, fmt.Errorf("creating match: %w", err)
	}

	return match, nil
}
