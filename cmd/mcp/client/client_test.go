package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/matches", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		_ = json.NewEncoder(w).Encode(MatchesResponse{
			Data: []Match{{ID: "m1", CompatibilityScore: 82.5, Status: "pending"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")

	matches, err := c.ListMatches(t.Context(), "pending", 2, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "m1", matches[0].ID)
	assert.Equal(t, 82.5, matches[0].CompatibilityScore)
}

func TestClient_RespondToMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/matches/m1/respond", r.URL.Path)

		var body struct {
			Accept bool `json:"accept"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Accept)

		_ = json.NewEncoder(w).Encode(Match{ID: "m1", Status: "accepted"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")

	match, err := c.RespondToMatch(t.Context(), "m1", true)
	require.NoError(t, err)
	assert.Equal(t, "accepted", match.Status)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"complete your vibe check before requesting matches"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-token")

	_, err := c.DiscoverMatches(t.Context(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
	assert.Contains(t, err.Error(), "vibe check")
}
