package domain

import "time"

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
	// MatchStatusMatched is terminal: both sides accepted, messaging opens.
	MatchStatusMatched MatchStatus = "matched"
)

// Valid reports whether s is one of the known match statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected, MatchStatusMatched:
		return true
	}
	return false
}

// SharedItem is one media item both users of a pair have interacted with,
// snapshotted onto the match at creation time.
type SharedItem struct {
	MediaID   string    `json:"media_id"`
	Title     string    `json:"title"`
	MediaType MediaType `json:"media_type"`
	RatingA   *float64  `json:"rating_a,omitempty"`
	RatingB   *float64  `json:"rating_b,omitempty"`
	IsTop4A   bool      `json:"is_top4_a"`
	IsTop4B   bool      `json:"is_top4_b"`
}

// Match is a persisted pairing of two distinct users. The user pair is
// stored normalized (UserAID < UserBID) so that uniqueness over the
// unordered pair is a single database constraint.
type Match struct {
	ID                 string       `json:"id"`
	UserAID            string       `json:"user_a_id"`
	UserBID            string       `json:"user_b_id"`
	CompatibilityScore float64      `json:"compatibility_score"`
	SharedItems        []SharedItem `json:"shared_items"`
	Icebreaker         string       `json:"icebreaker"`
	Status             MatchStatus  `json:"status"`
	AcceptedBy         string       `json:"accepted_by,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Involves reports whether userID is one of the match's two users.
func (m Match) Involves(userID string) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherUser returns the match participant that is not userID.
func (m Match) OtherUser(userID string) string {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}

// NormalizePair orders two user IDs so the unordered pair has a single
// canonical representation.
func NormalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// Message is a chat message within a match. Icebreaker seed messages are
// system-authored.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	IsSystem  bool      `json:"is_system_message"`
	CreatedAt time.Time `json:"created_at"`
}
