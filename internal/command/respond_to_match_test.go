package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/culturematch/culturematch/internal/datasources/mocks"
	"github.com/culturematch/culturematch/internal/domain"
)

func TestRespondToMatch_Execute(t *testing.T) {
	cases := []struct {
		name           string
		status         domain.MatchStatus
		acceptedBy     string
		userID         string
		accept         bool
		wantStatus     domain.MatchStatus
		wantAcceptedBy string
		wantSetCall    bool
		wantValidation bool
	}{
		{
			name:           "first_accept",
			status:         domain.MatchStatusPending,
			userID:         "userA",
			accept:         true,
			wantStatus:     domain.MatchStatusAccepted,
			wantAcceptedBy: "userA",
			wantSetCall:    true,
		},
		{
			name:           "second_accept_completes",
			status:         domain.MatchStatusAccepted,
			acceptedBy:     "userA",
			userID:         "userB",
			accept:         true,
			wantStatus:     domain.MatchStatusMatched,
			wantAcceptedBy: "userA",
			wantSetCall:    true,
		},
		{
			name:           "repeat_accept_same_user",
			status:         domain.MatchStatusAccepted,
			acceptedBy:     "userA",
			userID:         "userA",
			accept:         true,
			wantStatus:     domain.MatchStatusAccepted,
			wantAcceptedBy: "userA",
			wantSetCall:    false,
		},
		{
			name:        "accept_when_matched_is_noop",
			status:      domain.MatchStatusMatched,
			acceptedBy:  "userA",
			userID:      "userB",
			accept:      true,
			wantStatus:  domain.MatchStatusMatched,
			wantSetCall: false,
		},
		{
			name:           "accept_after_reject",
			status:         domain.MatchStatusRejected,
			userID:         "userA",
			accept:         true,
			wantValidation: true,
		},
		{
			name:        "reject_pending",
			status:      domain.MatchStatusPending,
			userID:      "userB",
			accept:      false,
			wantStatus:  domain.MatchStatusRejected,
			wantSetCall: true,
		},
		{
			name:           "reject_after_one_accept",
			status:         domain.MatchStatusAccepted,
			acceptedBy:     "userA",
			userID:         "userB",
			accept:         false,
			wantStatus:     domain.MatchStatusRejected,
			wantAcceptedBy: "userA",
			wantSetCall:    true,
		},
		{
			name:           "reject_when_matched",
			status:         domain.MatchStatusMatched,
			acceptedBy:     "userA",
			userID:         "userB",
			accept:         false,
			wantValidation: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)

			match := domain.Match{
				ID:         "match1",
				UserAID:    "userA",
				UserBID:    "userB",
				Status:     tc.status,
				AcceptedBy: tc.acceptedBy,
			}
			repo.EXPECT().
				GetMatch(mock.Anything, "match1").
				Return(match, nil)

			if tc.wantSetCall {
				repo.EXPECT().
					SetMatchStatus(mock.Anything, "match1", tc.wantStatus, tc.wantAcceptedBy).
					Return(nil)
			}

			cmd := NewRespondToMatch(repo)

			updated, err := cmd.Execute(testContext(), RespondToMatchRequest{
				MatchID: "match1",
				UserID:  tc.userID,
				Accept:  tc.accept,
			})

			if tc.wantValidation {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, updated.Status)
			assert.Equal(t, tc.wantAcceptedBy, updated.AcceptedBy)
		})
	}
}

func TestRespondToMatch_Execute_NonParticipant(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		GetMatch(mock.Anything, "match1").
		Return(domain.Match{ID: "match1", UserAID: "userA", UserBID: "userB"}, nil)

	cmd := NewRespondToMatch(repo)

	_, err := cmd.Execute(testContext(), RespondToMatchRequest{
		MatchID: "match1",
		UserID:  "stranger",
		Accept:  true,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitVibeCheck_Execute(t *testing.T) {
	answers := map[string]string{"subtitles": "always"}

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().
		SetVibeAnswers(mock.Anything, "user1", answers).
		Return(nil)

	cmd := NewSubmitVibeCheck(repo, testUpdateVectorCmd(t, repo))

	_, err := cmd.Execute(testContext(), SubmitVibeCheckRequest{UserID: "user1", Answers: answers})
	require.NoError(t, err)
}

func TestSubmitVibeCheck_Execute_Validation(t *testing.T) {
	cases := []struct {
		name    string
		answers map[string]string
	}{
		{name: "empty_map", answers: nil},
		{name: "empty_answer", answers: map[string]string{"subtitles": ""}},
		{name: "empty_question", answers: map[string]string{"": "always"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			cmd := NewSubmitVibeCheck(repo, testUpdateVectorCmd(t, repo))

			_, err := cmd.Execute(testContext(), SubmitVibeCheckRequest{UserID: "user1", Answers: tc.answers})
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestSubmitVibeCheck_Execute_VectorFailurePropagates(t *testing.T) {
	answers := map[string]string{"subtitles": "always"}

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().
		SetVibeAnswers(mock.Anything, "user1", answers).
		Return(nil)
	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user1").
		Return(domain.TasteProfile{VibeAnswers: answers}, nil)

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	vectors := mocks.NewMockVectorRepository(t)
	updateCmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 1})
	cmd := NewSubmitVibeCheck(repo, updateCmd)

	_, err := cmd.Execute(testContext(), SubmitVibeCheckRequest{UserID: "user1", Answers: answers})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rebuilding taste vector")
}
