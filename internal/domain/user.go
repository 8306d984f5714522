package domain

import "time"

// User is a member of the matching population. The taste vector itself
// lives in the vector store and is fetched by user ID; the relational
// record only carries profile data and the raw vibe check answers.
type User struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name"`
	Bio         string            `json:"bio"`
	AvatarURL   string            `json:"avatar_url"`
	VibeAnswers map[string]string `json:"vibe_answers,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
