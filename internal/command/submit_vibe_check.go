package command

import (
	"context"
	"fmt"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// SubmitVibeCheckRequest is the request for the SubmitVibeCheck command.
type SubmitVibeCheckRequest struct {
	UserID  string
	Answers map[string]string
}

// SubmitVibeCheck stores a user's vibe check answers and rebuilds their
// taste vector. Unlike interaction writes, a failed vector rebuild here
// fails the command: the vibe check is the onboarding step that makes a
// user matchable, so the caller needs to know it didn't take.
type SubmitVibeCheck struct {
	Answers         datasources.VibeAnswersSetter
	UpdateVectorCmd *UpdateTasteVector
}

// NewSubmitVibeCheck creates a properly initialized SubmitVibeCheck command.
func NewSubmitVibeCheck(
	answers datasources.VibeAnswersSetter,
	updateVectorCmd *UpdateTasteVector,
) *SubmitVibeCheck {
	return &SubmitVibeCheck{
		Answers:         answers,
		UpdateVectorCmd: updateVectorCmd,
	}
}

// Execute validates, stores, and embeds the vibe check answers.
func (c *SubmitVibeCheck) Execute(ctx context.Context, req SubmitVibeCheckRequest) (Empty, error) {
	if len(req.Answers) == 0 {
		return Empty{}, domain.NewValidationError("answers", "must not be empty")
	}
	for question, answer := range req.Answers {
		if question == "" || answer == "" {
			return Empty{}, domain.NewValidationError("answers", "questions and answers must not be empty")
		}
	}

	if err := c.Answers.SetVibeAnswers(ctx, req.UserID, req.Answers); err != nil {
		return Empty{}, fmt.Errorf("storing vibe answers: %w", err)
	}

	if _, err := c.UpdateVectorCmd.Execute(ctx, UpdateTasteVectorRequest{UserID: req.UserID}); err != nil {
		return Empty{}, fmt.Errorf("rebuilding taste vector: %w", err)
	}

	return Empty{}, nil
}
