package command

import (
	"context"
	"fmt"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

// RespondToMatchRequest is the request for the RespondToMatch command.
type RespondToMatchRequest struct {
	MatchID string
	UserID  string
	Accept  bool
}

// RespondToMatch records one participant's accept or reject decision.
// A match reaches matched only once both participants accept; a reject
// from either side is terminal.
type RespondToMatch struct {
	Matches datasources.MatchStore
}

// NewRespondToMatch creates a properly initialized RespondToMatch command.
func NewRespondToMatch(matches datasources.MatchStore) *RespondToMatch {
	return &RespondToMatch{Matches: matches}
}

// Execute applies the response and returns the updated match.
// Non-participants get domain.ErrNotFound rather than a permission
// error, so match IDs are not probeable.
func (c *RespondToMatch) Execute(ctx context.Context, req RespondToMatchRequest) (domain.Match, error) {
	match, err := c.Matches.GetMatch(ctx, req.MatchID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("getting match: %w", err)
	}
	if !match.Involves(req.UserID) {
		return domain.Match{}, fmt.Errorf("match [%s]: %w", req.MatchID, domain.ErrNotFound)
	}

	status, acceptedBy, err := nextMatchStatus(match, req.UserID, req.Accept)
	if err != nil {
		return domain.Match{}, err
	}
	if status == match.Status && acceptedBy == match.AcceptedBy {
		return match, nil
	}

	if err := c.Matches.SetMatchStatus(ctx, match.ID, status, acceptedBy); err != nil {
		return domain.Match{}, fmt.Errorf("setting match status: %w", err)
	}

	match.Status = status
	match.AcceptedBy = acceptedBy
	return match, nil
}

// nextMatchStatus computes the state transition for a participant's
// response.
func nextMatchStatus(match domain.Match, userID string, accept bool) (domain.MatchStatus, string, error) {
	if !accept {
		if match.Status == domain.MatchStatusMatched {
			return "", "", domain.NewValidationError("status", "match is already mutual")
		}
		return domain.MatchStatusRejected, match.AcceptedBy, nil
	}

	switch match.Status {
	case domain.MatchStatusPending:
		return domain.MatchStatusAccepted, userID, nil
	case domain.MatchStatusAccepted:
		if match.AcceptedBy == userID {
			// Repeat accept from the same side changes nothing.
			return match.Status, match.AcceptedBy, nil
		}
		return domain.MatchStatusMatched, match.AcceptedBy, nil
	case domain.MatchStatusMatched:
		return match.Status, match.AcceptedBy, nil
	case domain.MatchStatusRejected:
		return "", "", domain.NewValidationError("status", "match was rejected")
	default:
		return "", "", domain.NewValidationError("status", fmt.Sprintf("unknown status %q", match.Status))
	}
}
