package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dsmocks "github.com/culturematch/culturematch/internal/datasources/mocks"
	"github.com/culturematch/culturematch/internal/domain"
)

func TestMatchGet_ServeHTTP(t *testing.T) {
	match := domain.Match{
		ID:                 "m1",
		UserAID:            "user1",
		UserBID:            "user2",
		CompatibilityScore: 82.5,
		Status:             domain.MatchStatusPending,
	}

	cases := []struct {
		name     string
		userID   string
		match    domain.Match
		getErr   error
		wantCode int
	}{
		{
			name:     "participant_sees_match",
			userID:   "user1",
			match:    match,
			wantCode: http.StatusOK,
		},
		{
			name:     "non_participant_not_found",
			userID:   "outsider",
			match:    match,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown_match",
			userID:   "user1",
			getErr:   domain.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "no_user_id_unauthorized",
			userID:   "",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repository := dsmocks.NewMockRepository(t)

			if tc.userID != "" {
				repository.EXPECT().
					GetMatch(mock.Anything, "m1").
					Return(tc.match, tc.getErr)
			}

			controller := MatchGet{Getter: repository}

			req := httptest.NewRequest(http.MethodGet, "/v1/matches/m1", nil)
			req = mux.SetURLVars(req, map[string]string{"match_id": "m1"})
			req = testContextWithUserID(tc.userID)(req)

			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			if tc.wantCode == http.StatusOK {
				var got domain.Match
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, match.ID, got.ID)
			}
		})
	}
}
