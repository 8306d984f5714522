package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GenericOpener is the icebreaker used when a matched pair shares no items.
const GenericOpener = "You two have similar cultural vibes! Start by sharing your current favorite song or movie."

// showdownDelta is the minimum rating disagreement that makes a shared
// item a "ratings showdown" prompt.
const showdownDelta = 2.0

// highRating is the threshold above which both sides agreeing makes a
// shared item a "rated highly" prompt.
const highRating = 4.0

// IcebreakerPool builds the set of eligible conversation starters from a
// pair's shared items. Each item qualifies for at most one category, in
// priority order: both-top4, ratings showdown, both rated highly. Items
// matching no category contribute nothing.
func IcebreakerPool(shared []SharedItem) []string {
	var pool []string

	for _, item := range shared {
		switch {
		case item.IsTop4A && item.IsTop4B:
			if item.MediaType == MediaTypeMovie {
				pool = append(pool, fmt.Sprintf(
					"🎬 You BOTH have '%s' in your Top 4 movies! What scene lives rent-free in your head?",
					item.Title))
			} else {
				pool = append(pool, fmt.Sprintf(
					"🎵 You BOTH have '%s' in your Top 4! What's your go-to track?",
					item.Title))
			}

		case item.RatingA != nil && item.RatingB != nil &&
			math.Abs(*item.RatingA-*item.RatingB) >= showdownDelta:
			higher := math.Max(*item.RatingA, *item.RatingB)
			lower := math.Min(*item.RatingA, *item.RatingB)
			pool = append(pool, fmt.Sprintf(
				"⚔️ Rating showdown! One of you gave '%s' %g stars, the other gave it %g. Defend your rating!",
				item.Title, higher, lower))

		case item.RatingA != nil && item.RatingB != nil &&
			*item.RatingA >= highRating && *item.RatingB >= highRating:
			pool = append(pool, fmt.Sprintf(
				"💫 You both rated '%s' highly! What made it special for you?",
				item.Title))
		}
	}

	return pool
}

// GenerateIcebreaker picks a conversation starter for a pair's shared
// items. Selection from a non-empty pool is uniformly random; rng is
// injected so tests can pin it. With shared items but an empty pool, the
// first shared item is named generically.
func GenerateIcebreaker(shared []SharedItem, rng *rand.Rand) string {
	if len(shared) == 0 {
		return GenericOpener
	}

	pool := IcebreakerPool(shared)
	if len(pool) > 0 {
		return pool[rng.IntN(len(pool))]
	}

	return fmt.Sprintf(
		"🎯 You both have '%s' in your library. Great taste recognizes great taste!",
		shared[0].Title)
}
