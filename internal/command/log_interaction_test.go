package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/culturematch/culturematch/internal/datasources/mocks"
	"github.com/culturematch/culturematch/internal/domain"
)

func testUpdateVectorCmd(t *testing.T, repo *mocks.MockRepository) *UpdateTasteVector {
	t.Helper()

	vectors := mocks.NewMockVectorRepository(t)
	embedder := mocks.NewMockEmbedder(t)

	repo.EXPECT().
		GetTasteProfile(mock.Anything, mock.Anything).
		Return(domain.TasteProfile{Genres: []string{"Indie"}}, nil).
		Maybe()
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return([]float32{0.1}, nil).
		Maybe()
	vectors.EXPECT().
		UpsertUserVector(mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	return NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 1})
}

func TestLogInteraction_Execute(t *testing.T) {
	rating := 4.5

	repo := mocks.NewMockRepository(t)

	item := domain.MediaItem{
		ID:         "media1",
		ExternalID: "tmdb-603",
		Type:       domain.MediaTypeMovie,
		Title:      "The Matrix",
	}
	repo.EXPECT().
		FindOrCreateMediaItem(mock.Anything, mock.Anything).
		Return(item, nil)

	repo.EXPECT().
		UpsertInteraction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, interaction domain.Interaction) (domain.Interaction, error) {
			return interaction, nil
		})

	cmd := NewLogInteraction(repo, repo, testUpdateVectorCmd(t, repo))

	interaction, err := cmd.Execute(testContext(), LogInteractionRequest{
		UserID:     "user1",
		ExternalID: "tmdb-603",
		MediaType:  domain.MediaTypeMovie,
		Title:      "The Matrix",
		Kind:       domain.InteractionLogged,
		Rating:     &rating,
	})
	require.NoError(t, err)

	assert.Equal(t, "user1", interaction.UserID)
	assert.Equal(t, "media1", interaction.MediaID)
	assert.Equal(t, domain.InteractionLogged, interaction.Kind)
	require.NotNil(t, interaction.Rating)
	assert.Equal(t, 4.5, *interaction.Rating)
}

func TestLogInteraction_Execute_Validation(t *testing.T) {
	badRating := 4.3
	outOfRange := 5.5

	cases := []struct {
		name string
		req  LogInteractionRequest
	}{
		{
			name: "unknown_media_type",
			req: LogInteractionRequest{
				UserID: "user1", ExternalID: "x", MediaType: "podcast",
				Title: "T", Kind: domain.InteractionLogged,
			},
		},
		{
			name: "unknown_kind",
			req: LogInteractionRequest{
				UserID: "user1", ExternalID: "x", MediaType: domain.MediaTypeMovie,
				Title: "T", Kind: "watched",
			},
		},
		{
			name: "empty_external_id",
			req: LogInteractionRequest{
				UserID: "user1", MediaType: domain.MediaTypeMovie,
				Title: "T", Kind: domain.InteractionLogged,
			},
		},
		{
			name: "empty_title",
			req: LogInteractionRequest{
				UserID: "user1", ExternalID: "x", MediaType: domain.MediaTypeMovie,
				Kind: domain.InteractionLogged,
			},
		},
		{
			name: "off_step_rating",
			req: LogInteractionRequest{
				UserID: "user1", ExternalID: "x", MediaType: domain.MediaTypeMovie,
				Title: "T", Kind: domain.InteractionLogged, Rating: &badRating,
			},
		},
		{
			name: "rating_out_of_range",
			req: LogInteractionRequest{
				UserID: "user1", ExternalID: "x", MediaType: domain.MediaTypeMovie,
				Title: "T", Kind: domain.InteractionLogged, Rating: &outOfRange,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepository(t)
			cmd := NewLogInteraction(repo, repo, testUpdateVectorCmd(t, repo))

			_, err := cmd.Execute(testContext(), tc.req)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestLogInteraction_Execute_Top4Full(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	item := domain.MediaItem{
		ID:         "media1",
		ExternalID: "tmdb-603",
		Type:       domain.MediaTypeMovie,
		Title:      "The Matrix",
	}
	repo.EXPECT().
		FindOrCreateMediaItem(mock.Anything, mock.Anything).
		Return(item, nil)
	repo.EXPECT().
		GetInteraction(mock.Anything, "user1", "media1", domain.InteractionTop4).
		Return(domain.Interaction{}, domain.ErrNotFound)
	repo.EXPECT().
		CountTop4(mock.Anything, "user1", domain.MediaTypeMovie).
		Return(domain.Top4Capacity, nil)

	cmd := NewLogInteraction(repo, repo, testUpdateVectorCmd(t, repo))

	_, err := cmd.Execute(testContext(), LogInteractionRequest{
		UserID:     "user1",
		ExternalID: "tmdb-603",
		MediaType:  domain.MediaTypeMovie,
		Title:      "The Matrix",
		Kind:       domain.InteractionTop4,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestLogInteraction_Execute_Top4ReplaceExisting(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	item := domain.MediaItem{
		ID:         "media1",
		ExternalID: "tmdb-603",
		Type:       domain.MediaTypeMovie,
		Title:      "The Matrix",
	}
	repo.EXPECT().
		FindOrCreateMediaItem(mock.Anything, mock.Anything).
		Return(item, nil)

	// Item already holds a top4 slot, so no capacity check is needed.
	repo.EXPECT().
		GetInteraction(mock.Anything, "user1", "media1", domain.InteractionTop4).
		Return(domain.Interaction{ID: "existing"}, nil)
	repo.EXPECT().
		UpsertInteraction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, interaction domain.Interaction) (domain.Interaction, error) {
			return interaction, nil
		})

	cmd := NewLogInteraction(repo, repo, testUpdateVectorCmd(t, repo))

	_, err := cmd.Execute(testContext(), LogInteractionRequest{
		UserID:     "user1",
		ExternalID: "tmdb-603",
		MediaType:  domain.MediaTypeMovie,
		Title:      "The Matrix",
		Kind:       domain.InteractionTop4,
	})
	require.NoError(t, err)
}

func TestLogInteraction_Execute_VectorRefreshFailureIsNonFatal(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	item := domain.MediaItem{ID: "media1", ExternalID: "x", Type: domain.MediaTypeMovie, Title: "T"}
	repo.EXPECT().
		FindOrCreateMediaItem(mock.Anything, mock.Anything).
		Return(item, nil)
	repo.EXPECT().
		UpsertInteraction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, interaction domain.Interaction) (domain.Interaction, error) {
			return interaction, nil
		})

	vectors := mocks.NewMockVectorRepository(t)
	embedder := mocks.NewMockEmbedder(t)
	repo.EXPECT().
		GetTasteProfile(mock.Anything, "user1").
		Return(domain.TasteProfile{}, errors.New("database error"))

	updateCmd := NewUpdateTasteVector(repo, embedder, vectors, UpdateTasteVectorConfig{Dimension: 1})
	cmd := NewLogInteraction(repo, repo, updateCmd)

	_, err := cmd.Execute(testContext(), LogInteractionRequest{
		UserID:     "user1",
		ExternalID: "x",
		MediaType:  domain.MediaTypeMovie,
		Title:      "T",
		Kind:       domain.InteractionLogged,
	})
	require.NoError(t, err)
}

func TestRemoveInteraction_Execute(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		DeleteInteraction(mock.Anything, "user1", "media1", domain.InteractionLogged).
		Return(nil)

	cmd := NewRemoveInteraction(repo, testUpdateVectorCmd(t, repo))

	_, err := cmd.Execute(testContext(), RemoveInteractionRequest{
		UserID:  "user1",
		MediaID: "media1",
		Kind:    domain.InteractionLogged,
	})
	require.NoError(t, err)
}

func TestRemoveInteraction_Execute_NotFound(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	repo.EXPECT().
		DeleteInteraction(mock.Anything, "user1", "media1", domain.InteractionLogged).
		Return(domain.ErrNotFound)

	cmd := NewRemoveInteraction(repo, testUpdateVectorCmd(t, repo))

	_, err := cmd.Execute(testContext(), RemoveInteractionRequest{
		UserID:  "user1",
		MediaID: "media1",
		Kind:    domain.InteractionLogged,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
