// Package client provides an HTTP client for the CultureMatch API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SharedItem is one media item both users of a match have in common.
type SharedItem struct {
	MediaID   string   `json:"media_id"`
	Title     string   `json:"title"`
	MediaType string   `json:"media_type"`
	RatingA   *float64 `json:"rating_a,omitempty"`
	RatingB   *float64 `json:"rating_b,omitempty"`
	IsTop4A   bool     `json:"is_top4_a"`
	IsTop4B   bool     `json:"is_top4_b"`
}

// Match represents a match from the CultureMatch API.
type Match struct {
	ID                 string       `json:"id"`
	UserAID            string       `json:"user_a_id"`
	UserBID            string       `json:"user_b_id"`
	CompatibilityScore float64      `json:"compatibility_score"`
	SharedItems        []SharedItem `json:"shared_items"`
	Icebreaker         string       `json:"icebreaker"`
	Status             string       `json:"status"`
	AcceptedBy         string       `json:"accepted_by,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Interaction represents a logged media interaction.
type Interaction struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MediaID    string    `json:"media_id"`
	Kind       string    `json:"interaction_kind"`
	Rating     *float64  `json:"rating,omitempty"`
	ReviewText string    `json:"review_text,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MatchesResponse represents the response envelope for match lists.
type MatchesResponse struct {
	Data []Match `json:"data"`
}

// LogInteractionParams contains the fields for logging an interaction.
type LogInteractionParams struct {
	ExternalID string   `json:"external_id"`
	MediaType  string   `json:"media_type"`
	Title      string   `json:"title"`
	ImageURL   string   `json:"image_url,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Kind       string   `json:"interaction_kind"`
	Rating     *float64 `json:"rating,omitempty"`
	ReviewText string   `json:"review_text,omitempty"`
}

// Client is an HTTP client for the CultureMatch API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// ListMatches retrieves the authenticated user's matches, optionally
// filtered by status.
func (c *Client) ListMatches(ctx context.Context, status string, page, pageSize int) ([]Match, error) {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}

	path := "/v1/matches"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result MatchesResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetMatch retrieves a single match by its ID.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/matches/"+url.PathEscape(matchID))
	if err != nil {
		return nil, err
	}

	var match Match
	if err := c.handleResponse(resp, &match); err != nil {
		return nil, err
	}

	return &match, nil
}

// DiscoverMatches runs match discovery for the authenticated user and
// returns the matches created.
func (c *Client) DiscoverMatches(ctx context.Context, limit int) ([]Match, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/v1/matches/discover"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	var result MatchesResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// RespondToMatch accepts or rejects a match on behalf of the
// authenticated user.
func (c *Client) RespondToMatch(ctx context.Context, matchID string, accept bool) (*Match, error) {
	reqBody := struct {
		Accept bool `json:"accept"`
	}{
		Accept: accept,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	path := "/v1/matches/" + url.PathEscape(matchID) + "/respond"
	resp, err := c.doRequestWithBody(ctx, http.MethodPost, path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var match Match
	if err := c.handleResponse(resp, &match); err != nil {
		return nil, err
	}

	return &match, nil
}

// LogInteraction records a media interaction for the authenticated user.
func (c *Client) LogInteraction(ctx context.Context, params LogInteractionParams) (*Interaction, error) {
	jsonBody, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, "/v1/interactions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	var interaction Interaction
	if err := c.handleResponse(resp, &interaction); err != nil {
		return nil, err
	}

	return &interaction, nil
}

// RemoveInteraction deletes an interaction by media ID and kind.
func (c *Client) RemoveInteraction(ctx context.Context, mediaID, kind string) error {
	path := "/v1/interactions/" + url.PathEscape(mediaID) + "/" + url.PathEscape(kind)
	resp, err := c.doRequest(ctx, http.MethodDelete, path)
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// SubmitVibeCheck stores the authenticated user's vibe check answers and
// rebuilds their taste vector.
func (c *Client) SubmitVibeCheck(ctx context.Context, answers map[string]string) error {
	reqBody := struct {
		Answers map[string]string `json:"answers"`
	}{
		Answers: answers,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	resp, err := c.doRequestWithBody(ctx, http.MethodPost, "/v1/users/me/vibe-check", bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}
