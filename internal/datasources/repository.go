package datasources

import (
	"context"

	"github.com/culturematch/culturematch/internal/domain"
)

type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

type UserIDLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

type VibeAnswersSetter interface {
	SetVibeAnswers(ctx context.Context, userID string, answers map[string]string) error
}

// TasteProfileGetter assembles the raw material for a user's taste
// vector: their vibe answers plus genre/artist/movie summaries drawn
// from their interaction history, top4 items first.
type TasteProfileGetter interface {
	GetTasteProfile(ctx context.Context, userID string) (domain.TasteProfile, error)
}

type MediaItemUpserter interface {
	FindOrCreateMediaItem(ctx context.Context, item domain.MediaItem) (domain.MediaItem, error)
}

type InteractionGetter interface {
	GetInteraction(
		ctx context.Context,
		userID, mediaID string,
		kind domain.InteractionKind,
	) (domain.Interaction, error)
}

type InteractionUpserter interface {
	UpsertInteraction(ctx context.Context, interaction domain.Interaction) (domain.Interaction, error)
}

type InteractionDeleter interface {
	DeleteInteraction(ctx context.Context, userID, mediaID string, kind domain.InteractionKind) error
}

// InteractionStore combines the interaction operations commands need
// when recording them.
type InteractionStore interface {
	InteractionGetter
	InteractionUpserter
	InteractionDeleter
	Top4Counter
}

type Top4Counter interface {
	CountTop4(ctx context.Context, userID string, mediaType domain.MediaType) (int, error)
}

// MatchedUserIDsLister lists every user already paired with the given
// user in any existing match record, in either direction.
type MatchedUserIDsLister interface {
	ListMatchedUserIDs(ctx context.Context, userID string) ([]string, error)
}

// RatedOverlapLister joins two users' interactions on media items where
// both sides supplied a numeric rating.
type RatedOverlapLister interface {
	ListRatedOverlaps(ctx context.Context, userAID, userBID string) ([]domain.RatingPair, error)
}

// SharedItemCounter counts media items both users interacted with,
// regardless of rating.
type SharedItemCounter interface {
	CountSharedItems(ctx context.Context, userAID, userBID string) (int, error)
}

// SharedItemsLister returns shared items for a pair, top4 items first,
// capped at limit.
type SharedItemsLister interface {
	ListSharedItems(ctx context.Context, userAID, userBID string, limit int) ([]domain.SharedItem, error)
}

// MatchCreator persists a match together with its seed message in a
// single transaction. A duplicate unordered user pair yields
// domain.ErrDuplicateMatch.
type MatchCreator interface {
	CreateMatch(ctx context.Context, match domain.Match, seedMessage domain.Message) error
}

type MatchGetter interface {
	GetMatch(ctx context.Context, matchID string) (domain.Match, error)
}

// MatchLister lists a user's matches ordered by compatibility score
// descending. An empty status lists all.
type MatchLister interface {
	ListUserMatches(ctx context.Context, userID string, status domain.MatchStatus) ([]domain.Match, error)
}

type MatchStatusSetter interface {
	SetMatchStatus(ctx context.Context, matchID string, status domain.MatchStatus, acceptedBy string) error
}

// MatchStore combines the match operations used to read and update
// persisted matches.
type MatchStore interface {
	MatchGetter
	MatchLister
	MatchStatusSetter
}

// Repository combines all relational store operations.
type Repository interface {
	UserGetter
	UserIDLister
	VibeAnswersSetter
	TasteProfileGetter
	MediaItemUpserter
	InteractionGetter
	InteractionUpserter
	InteractionDeleter
	Top4Counter
	MatchedUserIDsLister
	RatedOverlapLister
	SharedItemCounter
	SharedItemsLister
	MatchCreator
	MatchGetter
	MatchLister
	MatchStatusSetter
}
