package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturematch/culturematch/internal/domain"
)

const (
	testUserAID = "11111111-1111-1111-1111-111111111111"
	testUserBID = "22222222-2222-2222-2222-222222222222"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	_, err = db.ExecContext(ctx,
		"INSERT INTO users (id, email, display_name, vibe_answers) VALUES (?, ?, ?, ?)",
		testUserAID, "ana@example.com", "Ana",
		`{"subtitles": "always", "rewatcher": "yes"}`,
	)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		"INSERT INTO users (id, email, display_name) VALUES (?, ?, ?)",
		testUserBID, "ben@example.com", "Ben",
	)
	require.NoError(t, err)

	repo := New(db)

	movie, err := repo.FindOrCreateMediaItem(ctx, domain.MediaItem{
		ID:         "33333333-3333-3333-3333-333333333333",
		ExternalID: "tmdb-603",
		Type:       domain.MediaTypeMovie,
		Title:      "The Matrix",
		Genres:     []string{"Action", "Sci-Fi"},
	})
	require.NoError(t, err)

	artist, err := repo.FindOrCreateMediaItem(ctx, domain.MediaItem{
		ID:         "44444444-4444-4444-4444-444444444444",
		ExternalID: "spotify-radiohead",
		Type:       domain.MediaTypeArtist,
		Title:      "Radiohead",
		Genres:     []string{"Alternative"},
	})
	require.NoError(t, err)

	ratingA := 5.0
	_, err = repo.UpsertInteraction(ctx, domain.Interaction{
		ID:      "55555555-5555-5555-5555-555555555555",
		UserID:  testUserAID,
		MediaID: movie.ID,
		Kind:    domain.InteractionTop4,
		Rating:  &ratingA,
	})
	require.NoError(t, err)

	ratingB := 4.0
	_, err = repo.UpsertInteraction(ctx, domain.Interaction{
		ID:      "66666666-6666-6666-6666-666666666666",
		UserID:  testUserBID,
		MediaID: movie.ID,
		Kind:    domain.InteractionLogged,
		Rating:  &ratingB,
	})
	require.NoError(t, err)

	_, err = repo.UpsertInteraction(ctx, domain.Interaction{
		ID:      "77777777-7777-7777-7777-777777777777",
		UserID:  testUserAID,
		MediaID: artist.ID,
		Kind:    domain.InteractionFavorite,
	})
	require.NoError(t, err)

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	ctx := context.Background()
	for _, table := range []string{"messages", "matches", "interactions", "media_items", "users"} {
		_, err := db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}

	err := db.Close()
	require.NoError(t, err)
}

func TestRepository_GetUser(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	user, err := repo.GetUser(context.Background(), testUserAID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.DisplayName)
	assert.Equal(t, "always", user.VibeAnswers["subtitles"])

	_, err = repo.GetUser(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_GetTasteProfile(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	profile, err := repo.GetTasteProfile(context.Background(), testUserAID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Action", "Alternative", "Sci-Fi"}, profile.Genres)
	assert.Equal(t, []string{"Radiohead"}, profile.Artists)
	assert.Equal(t, []string{"The Matrix"}, profile.Movies)
	assert.Equal(t, "always", profile.VibeAnswers["subtitles"])
}

func TestRepository_SharedItems(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	count, err := repo.CountSharedItems(ctx, testUserAID, testUserBID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	items, err := repo.ListSharedItems(ctx, testUserAID, testUserBID, 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The Matrix", items[0].Title)
	assert.True(t, items[0].IsTop4A)
	assert.False(t, items[0].IsTop4B)
	require.NotNil(t, items[0].RatingA)
	assert.Equal(t, 5.0, *items[0].RatingA)

	pairs, err := repo.ListRatedOverlaps(ctx, testUserAID, testUserBID)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, 5.0, pairs[0].RatingA)
	assert.Equal(t, 4.0, pairs[0].RatingB)
}

func TestRepository_Top4Count(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	count, err := repo.CountTop4(ctx, testUserAID, domain.MediaTypeMovie)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountTop4(ctx, testUserBID, domain.MediaTypeMovie)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRepository_DeleteInteraction(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	movieID := "33333333-3333-3333-3333-333333333333"
	err := repo.DeleteInteraction(ctx, testUserAID, movieID, domain.InteractionTop4)
	require.NoError(t, err)

	err = repo.DeleteInteraction(ctx, testUserAID, movieID, domain.InteractionTop4)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_FindOrCreateMediaItem_Existing(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)

	item, err := repo.FindOrCreateMediaItem(context.Background(), domain.MediaItem{
		ID:         "99999999-9999-9999-9999-999999999999",
		ExternalID: "tmdb-603",
		Type:       domain.MediaTypeMovie,
		Title:      "The Matrix (duplicate)",
	})
	require.NoError(t, err)

	// Existing row wins; the new ID is discarded.
	assert.Equal(t, "33333333-3333-3333-3333-333333333333", item.ID)
	assert.Equal(t, "The Matrix", item.Title)
}

func TestRepository_CreateMatch(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	userA, userB := domain.NormalizePair(testUserBID, testUserAID)
	match := domain.Match{
		ID:                 "88888888-8888-8888-8888-888888888888",
		UserAID:            userA,
		UserBID:            userB,
		CompatibilityScore: 87.5,
		SharedItems: []domain.SharedItem{
			{MediaID: "33333333-3333-3333-3333-333333333333", Title: "The Matrix", MediaType: domain.MediaTypeMovie},
		},
		Icebreaker: "💫 You both rated 'The Matrix' highly! What made it special for you?",
		Status:     domain.MatchStatusPending,
		CreatedAt:  time.Now(),
	}
	seed := domain.Message{
		ID:        "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		MatchID:   match.ID,
		SenderID:  userA,
		Content:   match.Icebreaker,
		IsSystem:  true,
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.CreateMatch(ctx, match, seed))

	got, err := repo.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 87.5, got.CompatibilityScore)
	assert.Equal(t, domain.MatchStatusPending, got.Status)
	require.Len(t, got.SharedItems, 1)
	assert.Equal(t, "The Matrix", got.SharedItems[0].Title)

	// Same pair again, regardless of ordering, is a duplicate.
	match.ID = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	seed.ID = "cccccccc-cccc-cccc-cccc-cccccccccccc"
	seed.MatchID = match.ID
	err = repo.CreateMatch(ctx, match, seed)
	assert.ErrorIs(t, err, domain.ErrDuplicateMatch)

	others, err := repo.ListMatchedUserIDs(ctx, testUserAID)
	require.NoError(t, err)
	assert.Equal(t, []string{testUserBID}, others)

	matches, err := repo.ListUserMatches(ctx, testUserAID, "")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	matches, err = repo.ListUserMatches(ctx, testUserAID, domain.MatchStatusMatched)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRepository_SetMatchStatus(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	repo := New(db)
	ctx := context.Background()

	userA, userB := domain.NormalizePair(testUserAID, testUserBID)
	match := domain.Match{
		ID:                 "88888888-8888-8888-8888-888888888888",
		UserAID:            userA,
		UserBID:            userB,
		CompatibilityScore: 60.0,
		Status:             domain.MatchStatusPending,
		CreatedAt:          time.Now(),
	}
	seed := domain.Message{
		ID:        "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		MatchID:   match.ID,
		SenderID:  userA,
		Content:   domain.GenericOpener,
		IsSystem:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateMatch(ctx, match, seed))

	err := repo.SetMatchStatus(ctx, match.ID, domain.MatchStatusAccepted, testUserAID)
	require.NoError(t, err)

	got, err := repo.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusAccepted, got.Status)
	assert.Equal(t, testUserAID, got.AcceptedBy)

	err = repo.SetMatchStatus(ctx, "no-such-match", domain.MatchStatusAccepted, testUserAID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
