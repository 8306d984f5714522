package domain

import "strings"

// Caps on taste text inputs, to bound embedding input size.
const (
	maxTasteListEntries = 10
	maxTasteGenres      = 20
)

// vibeQuestionOrder fixes the order quiz answers contribute to the taste
// text, so identical answers always produce identical embeddings.
var vibeQuestionOrder = []string{
	"subtitles",
	"music_discovery",
	"movie_night",
	"concert_vibe",
	"genre_mood",
	"rewatcher",
	"soundtrack",
}

// vibeFragments maps (question ID, answer ID) to a natural-language
// fragment fed to the embedding provider. Unknown pairs are skipped.
var vibeFragments = map[string]map[string]string{
	"subtitles": {
		"on":      "Prefers watching films with subtitles",
		"off":     "Watches films without subtitles",
		"foreign": "Watches foreign films with subtitles",
	},
	"music_discovery": {
		"algorithm": "Discovers music through algorithms and playlists",
		"friends":   "Discovers music through friends recommendations",
		"deep_dive": "Actively seeks out and discovers new music",
		"radio":     "Discovers music through radio and playlists",
	},
	"movie_night": {
		"theater":  "Loves watching movies in the cinema",
		"couch":    "Enjoys cozy movie nights at home",
		"outdoor":  "Loves outdoor screenings and experiences",
		"marathon": "Loves movie marathons",
	},
	"concert_vibe": {
		"front":  "Enjoys being at the front of concerts",
		"middle": "Vibes in the middle section of concerts",
		"back":   "Prefers chilling in the back at concerts",
		"vip":    "Enjoys VIP concert experiences",
	},
	"genre_mood": {
		"upbeat":    "Loves upbeat pop and dance music",
		"chill":     "Enjoys lo-fi and chill music",
		"intense":   "Loves rock and metal music",
		"nostalgic": "Enjoys throwback and classic music",
	},
	"rewatcher": {
		"always":    "Loves rewatching comfort movies",
		"sometimes": "Rewatches really good movies",
		"never":     "Always wants to watch something new",
	},
	"soundtrack": {
		"love": "Loves movie soundtracks",
		"some": "Enjoys iconic soundtracks",
		"skip": "Separates music from film experience",
	},
}

// VibeAnswersToText converts vibe check answers to natural language.
// Unknown question or answer IDs are silently skipped.
func VibeAnswersToText(answers map[string]string) string {
	var fragments []string
	for _, questionID := range vibeQuestionOrder {
		answer, ok := answers[questionID]
		if !ok {
			continue
		}
		if fragment, ok := vibeFragments[questionID][answer]; ok {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, " ")
}

// TasteProfile is the raw material for a user's taste vector: quiz
// answers plus summaries of their rated library.
type TasteProfile struct {
	VibeAnswers map[string]string
	Genres      []string
	Artists     []string
	Movies      []string
}

// Text assembles the profile into the single text blob handed to the
// embedding provider: vibe text, then genres, then artists, then movies,
// joined by a stable separator. Returns "" when no component is present.
func (p TasteProfile) Text() string {
	var components []string

	if vibeText := VibeAnswersToText(p.VibeAnswers); vibeText != "" {
		components = append(components, vibeText)
	}
	if len(p.Genres) > 0 {
		components = append(components, "Favorite genres: "+strings.Join(capList(p.Genres, maxTasteGenres), ", "))
	}
	if len(p.Artists) > 0 {
		components = append(components, "Favorite artists: "+strings.Join(capList(p.Artists, maxTasteListEntries), ", "))
	}
	if len(p.Movies) > 0 {
		components = append(components, "Favorite movies: "+strings.Join(capList(p.Movies, maxTasteListEntries), ", "))
	}

	return strings.Join(components, " | ")
}

func capList(entries []string, limit int) []string {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
