package domain

import (
	"math"
	"time"
)

// MediaType identifies the kind of catalog entry a media item is.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeArtist MediaType = "artist"
	MediaTypeTrack  MediaType = "track"
	MediaTypeAlbum  MediaType = "album"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeArtist, MediaTypeTrack, MediaTypeAlbum:
		return true
	}
	return false
}

// InteractionKind identifies how a user interacted with a media item.
type InteractionKind string

const (
	InteractionLogged   InteractionKind = "logged"
	InteractionTop4     InteractionKind = "top4"
	InteractionAnthem   InteractionKind = "anthem"
	InteractionFavorite InteractionKind = "favorite"
)

// Valid reports whether k is one of the known interaction kinds.
func (k InteractionKind) Valid() bool {
	switch k {
	case InteractionLogged, InteractionTop4, InteractionAnthem, InteractionFavorite:
		return true
	}
	return false
}

// Top4Capacity is the maximum number of top4 interactions a user may hold
// per media type.
const Top4Capacity = 4

// MediaItem is a canonical catalog entry shared across users, keyed by
// (external source ID, media type).
type MediaItem struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Type       MediaType `json:"media_type"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"image_url"`
	Genres     []string  `json:"genres,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Interaction records a single (user, media item, kind) interaction.
// Rating is nil for unrated interactions.
type Interaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	MediaID    string          `json:"media_id"`
	Kind       InteractionKind `json:"interaction_kind"`
	Rating     *float64        `json:"rating,omitempty"`
	ReviewText string          `json:"review_text,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ValidateRating checks a rating is within [0.5, 5.0] on a half-point step.
func ValidateRating(rating float64) error {
	if rating < 0.5 || rating > 5.0 {
		return NewValidationError("rating", "must be between 0.5 and 5.0")
	}
	if math.Mod(rating*2, 1) != 0 {
		return NewValidationError("rating", "must be a multiple of 0.5")
	}
	return nil
}
