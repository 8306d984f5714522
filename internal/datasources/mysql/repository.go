package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"

	"github.com/culturematch/culturematch/internal/datasources"
	"github.com/culturematch/culturematch/internal/domain"
)

var _ datasources.Repository = (*Repository)(nil)

// mysqlErrDuplicateEntry is the MySQL error number for a unique
// constraint violation.
const mysqlErrDuplicateEntry = 1062

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

// ============================================
// Users
// ============================================

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select(
		"id", "email", "display_name", "bio", "avatar_url", "vibe_answers", "created_at", "updated_at",
	)
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var user domain.User
	var displayName, bio, avatarURL sql.NullString
	var vibeAnswers []byte
	err := row.Scan(
		&user.ID, &user.Email, &displayName, &bio, &avatarURL,
		&vibeAnswers, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	user.DisplayName = displayName.String
	user.Bio = bio.String
	user.AvatarURL = avatarURL.String
	if len(vibeAnswers) > 0 {
		if err := json.Unmarshal(vibeAnswers, &user.VibeAnswers); err != nil {
			return domain.User{}, fmt.Errorf("unmarshalling vibe answers: %w", err)
		}
	}

	return user, nil
}

func (r *Repository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM users")
	if err != nil {
		return nil, fmt.Errorf("running user IDs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user IDs: %w", err)
	}

	return ids, nil
}

func (r *Repository) SetVibeAnswers(ctx context.Context, userID string, answers map[string]string) error {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshalling vibe answers: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET vibe_answers = ?, updated_at = ? WHERE id = ?",
		encoded, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("updating vibe answers: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking vibe answers update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ============================================
// Taste profile
// ============================================

const userTitlesByTypeQuery = `
SELECT m.title
FROM media_items m
INNER JOIN interactions i ON i.media_id = m.id
WHERE i.user_id = ? AND m.media_type = ?
ORDER BY (i.kind = 'top4') DESC, i.rating IS NULL, i.rating DESC
LIMIT ?`

const userGenresQuery = `
SELECT DISTINCT m.genres
FROM media_items m
INNER JOIN interactions i ON i.media_id = m.id
WHERE i.user_id = ?`

// GetTasteProfile assembles the embedding inputs for a user: vibe
// answers, the genre set across their library, and their top artists and
// movies with top4 items first.
func (r *Repository) GetTasteProfile(ctx context.Context, userID string) (domain.TasteProfile, error) {
	user, err := r.GetUser(ctx, userID)
	if err != nil {
		return domain.TasteProfile{}, err
	}

	genres, err := r.listUserGenres(ctx, userID)
	if err != nil {
		return domain.TasteProfile{}, err
	}

	artists, err := r.listUserTitlesByType(ctx, userID, domain.MediaTypeArtist)
	if err != nil {
		return domain.TasteProfile{}, err
	}

	movies, err := r.listUserTitlesByType(ctx, userID, domain.MediaTypeMovie)
	if err != nil {
		return domain.TasteProfile{}, err
	}

	return domain.TasteProfile{
		VibeAnswers: user.VibeAnswers,
		Genres:      genres,
		Artists:     artists,
		Movies:      movies,
	}, nil
}

func (r *Repository) listUserGenres(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, userGenresQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("running user genres query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	seen := make(map[string]struct{})
	for rows.Next() {
		var encoded []byte
		if err := rows.Scan(&encoded); err != nil {
			return nil, fmt.Errorf("scanning genres: %w", err)
		}
		if len(encoded) == 0 {
			continue
		}
		var genres []string
		if err := json.Unmarshal(encoded, &genres); err != nil {
			return nil, fmt.Errorf("unmarshalling genres: %w", err)
		}
		for _, genre := range genres {
			seen[genre] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating genres: %w", err)
	}

	// Sorted so identical libraries always embed identically.
	result := make([]string, 0, len(seen))
	for genre := range seen {
		result = append(result, genre)
	}
	sort.Strings(result)
	return result, nil
}

func (r *Repository) listUserTitlesByType(
	ctx context.Context, userID string, mediaType domain.MediaType,
) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, userTitlesByTypeQuery, userID, string(mediaType), 10)
	if err != nil {
		return nil, fmt.Errorf("running user titles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating titles: %w", err)
	}

	return titles, nil
}

// ============================================
// Media items and interactions
// ============================================

func (r *Repository) FindOrCreateMediaItem(
	ctx context.Context, item domain.MediaItem,
) (domain.MediaItem, error) {
	existing, err := r.getMediaItemByExternalID(ctx, item.ExternalID, item.Type)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.MediaItem{}, err
	}

	genres, err := json.Marshal(item.Genres)
	if err != nil {
		return domain.MediaItem{}, fmt.Errorf("marshalling genres: %w", err)
	}

	item.CreatedAt = time.Now()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO media_items (id, external_id, media_type, title, image_url, genres, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.ExternalID, string(item.Type), item.Title, item.ImageURL, genres, item.CreatedAt,
	)
	if isDuplicateEntry(err) {
		// Lost a create race; the winner's row is canonical.
		return r.getMediaItemByExternalID(ctx, item.ExternalID, item.Type)
	}
	if err != nil {
		return domain.MediaItem{}, fmt.Errorf("inserting media item: %w", err)
	}

	return item, nil
}

func (r *Repository) getMediaItemByExternalID(
	ctx context.Context, externalID string, mediaType domain.MediaType,
) (domain.MediaItem, error) {
	sb := sqlbuilder.Select("id", "external_id", "media_type", "title", "image_url", "genres", "created_at")
	sb.From("media_items")
	sb.Where(
		sb.Equal("external_id", externalID),
		sb.Equal("media_type", string(mediaType)),
	)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var item domain.MediaItem
	var imageURL sql.NullString
	var genres []byte
	err := row.Scan(&item.ID, &item.ExternalID, &item.Type, &item.Title, &imageURL, &genres, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MediaItem{}, fmt.Errorf("media item [%s/%s]: %w", mediaType, externalID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.MediaItem{}, fmt.Errorf("scanning media item: %w", err)
	}

	item.ImageURL = imageURL.String
	if len(genres) > 0 {
		if err := json.Unmarshal(genres, &item.Genres); err != nil {
			return domain.MediaItem{}, fmt.Errorf("unmarshalling genres: %w", err)
		}
	}
	return item, nil
}

func (r *Repository) GetInteraction(
	ctx context.Context, userID, mediaID string, kind domain.InteractionKind,
) (domain.Interaction, error) {
	sb := sqlbuilder.Select("id", "user_id", "media_id", "kind", "rating", "review_text", "created_at", "updated_at")
	sb.From("interactions")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("media_id", mediaID),
		sb.Equal("kind", string(kind)),
	)

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var interaction domain.Interaction
	var rating sql.NullFloat64
	var reviewText sql.NullString
	err := row.Scan(
		&interaction.ID, &interaction.UserID, &interaction.MediaID, &interaction.Kind,
		&rating, &reviewText, &interaction.CreatedAt, &interaction.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Interaction{}, fmt.Errorf("interaction: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("scanning interaction: %w", err)
	}

	if rating.Valid {
		interaction.Rating = &rating.Float64
	}
	interaction.ReviewText = reviewText.String
	return interaction, nil
}

const upsertInteractionQuery = `
INSERT INTO interactions (id, user_id, media_id, kind, rating, review_text, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
	rating = COALESCE(VALUES(rating), rating),
	review_text = VALUES(review_text),
	updated_at = VALUES(updated_at)`

// UpsertInteraction inserts or updates an interaction for its
// (user, media, kind) key. Re-logging without a rating keeps the stored
// rating; clearing a rating is done by deleting the interaction and
// logging it again.
func (r *Repository) UpsertInteraction(
	ctx context.Context, interaction domain.Interaction,
) (domain.Interaction, error) {
	var rating sql.NullFloat64
	if interaction.Rating != nil {
		rating = sql.NullFloat64{Float64: *interaction.Rating, Valid: true}
	}

	now := time.Now()
	interaction.CreatedAt = now
	interaction.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, upsertInteractionQuery,
		interaction.ID, interaction.UserID, interaction.MediaID, string(interaction.Kind),
		rating, interaction.ReviewText, interaction.CreatedAt, interaction.UpdatedAt,
	)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("upserting interaction: %w", err)
	}

	// Re-read so callers see the stored row, not the attempted insert.
	return r.GetInteraction(ctx, interaction.UserID, interaction.MediaID, interaction.Kind)
}

func (r *Repository) DeleteInteraction(
	ctx context.Context, userID, mediaID string, kind domain.InteractionKind,
) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM interactions WHERE user_id = ? AND media_id = ? AND kind = ?",
		userID, mediaID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("deleting interaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking interaction delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("interaction: %w", domain.ErrNotFound)
	}
	return nil
}

const countTop4Query = `
SELECT COUNT(*)
FROM interactions i
INNER JOIN media_items m ON m.id = i.media_id
WHERE i.user_id = ? AND i.kind = 'top4' AND m.media_type = ?`

func (r *Repository) CountTop4(
	ctx context.Context, userID string, mediaType domain.MediaType,
) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, countTop4Query, userID, string(mediaType)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting top4 interactions: %w", err)
	}
	return count, nil
}

// ============================================
// Overlap analysis
// ============================================

const ratedOverlapQuery = `
SELECT a.media_id, MAX(a.rating), MAX(b.rating)
FROM interactions a
INNER JOIN interactions b ON a.media_id = b.media_id
WHERE a.user_id = ? AND b.user_id = ?
	AND a.rating IS NOT NULL AND b.rating IS NOT NULL
GROUP BY a.media_id`

func (r *Repository) ListRatedOverlaps(
	ctx context.Context, userAID, userBID string,
) ([]domain.RatingPair, error) {
	rows, err := r.db.QueryContext(ctx, ratedOverlapQuery, userAID, userBID)
	if err != nil {
		return nil, fmt.Errorf("running rated overlap query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var pairs []domain.RatingPair
	for rows.Next() {
		var pair domain.RatingPair
		if err := rows.Scan(&pair.MediaID, &pair.RatingA, &pair.RatingB); err != nil {
			return nil, fmt.Errorf("scanning rated overlap: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rated overlaps: %w", err)
	}

	return pairs, nil
}

const sharedItemCountQuery = `
SELECT COUNT(DISTINCT a.media_id)
FROM interactions a
INNER JOIN interactions b ON a.media_id = b.media_id
WHERE a.user_id = ? AND b.user_id = ?`

func (r *Repository) CountSharedItems(ctx context.Context, userAID, userBID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, sharedItemCountQuery, userAID, userBID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting shared items: %w", err)
	}
	return count, nil
}

const sharedItemsQuery = `
SELECT m.id, m.title, m.media_type,
	MAX(a.rating), MAX(b.rating),
	MAX(a.kind = 'top4'), MAX(b.kind = 'top4')
FROM media_items m
INNER JOIN interactions a ON a.media_id = m.id AND a.user_id = ?
INNER JOIN interactions b ON b.media_id = m.id AND b.user_id = ?
GROUP BY m.id, m.title, m.media_type
ORDER BY MAX(a.kind = 'top4' OR b.kind = 'top4') DESC, m.title
LIMIT ?`

func (r *Repository) ListSharedItems(
	ctx context.Context, userAID, userBID string, limit int,
) ([]domain.SharedItem, error) {
	rows, err := r.db.QueryContext(ctx, sharedItemsQuery, userAID, userBID, limit)
	if err != nil {
		return nil, fmt.Errorf("running shared items query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []domain.SharedItem
	for rows.Next() {
		var item domain.SharedItem
		var ratingA, ratingB sql.NullFloat64
		if err := rows.Scan(
			&item.MediaID, &item.Title, &item.MediaType,
			&ratingA, &ratingB, &item.IsTop4A, &item.IsTop4B,
		); err != nil {
			return nil, fmt.Errorf("scanning shared item: %w", err)
		}
		if ratingA.Valid {
			item.RatingA = &ratingA.Float64
		}
		if ratingB.Valid {
			item.RatingB = &ratingB.Float64
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shared items: %w", err)
	}

	return items, nil
}

// ============================================
// Matches and messages
// ============================================

func (r *Repository) ListMatchedUserIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_a_id, user_b_id FROM matches WHERE user_a_id = ? OR user_b_id = ?",
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("running matched users query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var others []string
	for rows.Next() {
		var userA, userB string
		if err := rows.Scan(&userA, &userB); err != nil {
			return nil, fmt.Errorf("scanning matched users: %w", err)
		}
		if userA == userID {
			others = append(others, userB)
		} else {
			others = append(others, userA)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matched users: %w", err)
	}

	return others, nil
}

// CreateMatch persists the match and its seed message atomically. A
// duplicate unordered user pair yields domain.ErrDuplicateMatch.
func (r *Repository) CreateMatch(
	ctx context.Context, match domain.Match, seedMessage domain.Message,
) error {
	sharedItems, err := json.Marshal(match.SharedItems)
	if err != nil {
		return fmt.Errorf("marshalling shared items: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO matches (id, user_a_id, user_b_id, compatibility_score, shared_items, icebreaker, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		match.ID, match.UserAID, match.UserBID, match.CompatibilityScore,
		sharedItems, match.Icebreaker, string(match.Status), match.CreatedAt,
	)
	if isDuplicateEntry(err) {
		return fmt.Errorf("pair [%s, %s]: %w", match.UserAID, match.UserBID, domain.ErrDuplicateMatch)
	}
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO messages (id, match_id, sender_id, content, is_system, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		seedMessage.ID, seedMessage.MatchID, seedMessage.SenderID,
		seedMessage.Content, seedMessage.IsSystem, seedMessage.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting seed message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing match creation: %w", err)
	}
	return nil
}

func (r *Repository) GetMatch(ctx context.Context, matchID string) (domain.Match, error) {
	sb := matchSelectBuilder()
	sb.Where(sb.Equal("id", matchID))

	query, args := sb.Build()
	match, err := scanMatch(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Match{}, fmt.Errorf("match [%s]: %w", matchID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func (r *Repository) ListUserMatches(
	ctx context.Context, userID string, status domain.MatchStatus,
) ([]domain.Match, error) {
	sb := matchSelectBuilder()
	conds := []string{
		sb.Or(sb.Equal("user_a_id", userID), sb.Equal("user_b_id", userID)),
	}
	if status != "" {
		conds = append(conds, sb.Equal("status", string(status)))
	}
	sb.Where(conds...)
	sb.OrderBy("compatibility_score DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running matches query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []domain.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}

	return matches, nil
}

func (r *Repository) SetMatchStatus(
	ctx context.Context, matchID string, status domain.MatchStatus, acceptedBy string,
) error {
	var acceptedByVal sql.NullString
	if acceptedBy != "" {
		acceptedByVal = sql.NullString{String: acceptedBy, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE matches SET status = ?, accepted_by = ? WHERE id = ?",
		string(status), acceptedByVal, matchID,
	)
	if err != nil {
		return fmt.Errorf("updating match status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking match status update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match [%s]: %w", matchID, domain.ErrNotFound)
	}
	return nil
}

func matchSelectBuilder() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(
		"id", "user_a_id", "user_b_id", "compatibility_score",
		"shared_items", "icebreaker", "status", "accepted_by", "created_at",
	)
	sb.From("matches")
	return sb
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (domain.Match, error) {
	var match domain.Match
	var sharedItems []byte
	var icebreaker, acceptedBy sql.NullString

	err := row.Scan(
		&match.ID, &match.UserAID, &match.UserBID, &match.CompatibilityScore,
		&sharedItems, &icebreaker, &match.Status, &acceptedBy, &match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Match{}, err
		}
		return domain.Match{}, fmt.Errorf("scanning match: %w", err)
	}

	match.Icebreaker = icebreaker.String
	match.AcceptedBy = acceptedBy.String
	if len(sharedItems) > 0 {
		if err := json.Unmarshal(sharedItems, &match.SharedItems); err != nil {
			return domain.Match{}, fmt.Errorf("unmarshalling shared items: %w", err)
		}
	}
	return match, nil
}
