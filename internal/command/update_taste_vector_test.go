package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/culturematch/culturematch/internal/datasources/mocks"
	"github.com/culturematch/culturematch/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func TestUpdateTasteVector_Execute(t *testing.T) {
	profile := domain.TasteProfile{
		VibeAnswers: map[string]string{"subtitles": "always"},
		Genres:      []string{"Indie"},
	}
	testVector := []float32{0.1, 0.2, 0.3}

	repo := mocks.NewMockRepository(t)
	embedder := mocks.NewMockEmbedder(t)
	vectors := mocks.NewMockVectorRepository(t)

	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user1").
		Return(profile, nil)

	embedder.EXPECT().
		EmbedText(mock.Anything, profile.Text()).
		Return(testVector, nil)

	vectors.EXPECT().
		UpsertUserVector(mock.Anything, "user1", testVector).
		Return(nil)

	cmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 3})

	_, err := cmd.Execute(testContext(), UpdateTasteVectorRequest{UserID: "user1"})
	require.NoError(t, err)
}

func TestUpdateTasteVector_Execute_EmptyProfile(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	embedder := mocks.NewMockEmbedder(t)
	vectors := mocks.NewMockVectorRepository(t)

	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user1").
		Return(domain.TasteProfile{}, nil)

	// No embedder call; an empty profile gets a zero vector directly.
	vectors.EXPECT().
		UpsertUserVector(mock.Anything, "user1", []float32{0, 0, 0, 0}).
		Return(nil)

	cmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 4})

	_, err := cmd.Execute(testContext(), UpdateTasteVectorRequest{UserID: "user1"})
	require.NoError(t, err)
}

func TestUpdateTasteVector_Execute_Errors(t *testing.T) {
	profile := domain.TasteProfile{Genres: []string{"Indie"}}

	cases := []struct {
		name        string
		profileErr  error
		embedErr    error
		upsertErr   error
		errContains string
	}{
		{
			name:        "profile_error",
			profileErr:  errors.New("database error"),
			errContains: "getting taste profile",
		},
		{
			name:        "embed_error",
			embedErr:    errors.New("voyage error"),
			errContains: "embedding taste text",
		},
		{
			name:        "upsert_error",
			upsertErr:   errors.New("pinecone error"),
			errContains: "storing taste vector",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			embedder := mocks.NewMockEmbedder(t)
			vectors := mocks.NewMockVectorRepository(t)

			repo.EXPECT().
				GetTasteProfile(mock.Anything, "user1").
				Return(profile, tc.profileErr)

			if tc.profileErr == nil {
				embedder.EXPECT().
					EmbedText(mock.Anything, profile.Text()).
					Return([]float32{0.5}, tc.embedErr)
			}
			if tc.profileErr == nil && tc.embedErr == nil {
				vectors.EXPECT().
					UpsertUserVector(mock.Anything, "user1", []float32{0.5}).
					Return(tc.upsertErr)
			}

			cmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 1})

			_, err := cmd.Execute(testContext(), UpdateTasteVectorRequest{UserID: "user1"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestRefreshAllVectors_Execute(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	embedder := mocks.NewMockEmbedder(t)
	vectors := mocks.NewMockVectorRepository(t)

	repo.EXPECT().
		ListUserIDs(mock.Anything).
		Return([]string{"user1", "user2", "user3"}, nil)

	// user2's profile read fails; the batch continues.
	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user1").
		Return(domain.TasteProfile{Genres: []string{"Jazz"}}, nil)
	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user2").
		Return(domain.TasteProfile{}, errors.New("database error"))
	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user3").
		Return(domain.TasteProfile{Genres: []string{"Folk"}}, nil)

	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return([]float32{0.1}, nil)

	vectors.EXPECT().
		UpsertUserVector(mock.Anything, mock.Anything, []float32{0.1}).
		Return(nil)

	updateCmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 1})
	cmd := NewRefreshAllVectors(repo, updateCmd)

	result, err := cmd.Execute(testContext(), RefreshAllVectorsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailCount)
}
