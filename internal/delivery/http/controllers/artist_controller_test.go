package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stagefront/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistController_ListArtists(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{
			name:      "all artists sorted by name",
			query:     "",
			wantNames: []string{"Arctic Monkeys", "Dua Lipa", "The Weeknd"},
		},
		{
			name:      "search by substring",
			query:     "?search=dua",
			wantNames: []string{"Dua Lipa"},
		},
		{
			name:      "genre facet",
			query:     "?genre=pop",
			wantNames: []string{"Dua Lipa"},
		},
		{
			name:      "country facet is exact",
			query:     "?country=UK",
			wantNames: []string{"Arctic Monkeys", "Dua Lipa"},
		},
		{
			name:      "no matches",
			query:     "?search=nosuchband",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewArtistController(testLogger, &fakeStateReader{state: catalogSnapshot()})
			req := httptest.NewRequest(http.MethodGet, "/artists"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.ListArtists(rr, req)

			require.Equal(t, http.StatusOK, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.Nil(t, envelope.Error)

			var resp ListArtistsResponse
			decodeData(t, envelope, &resp)
			gotNames := make([]string, 0, len(resp.Artists))
			for _, a := range resp.Artists {
				gotNames = append(gotNames, a.Name)
			}
			assert.Equal(t, tt.wantNames, gotNames, "artist names in order")
			// Facet options always reflect the full catalog, not the filtered page.
			assert.Equal(t, []string{"indie rock", "pop", "r&b"}, resp.GenreOptions)
			assert.Equal(t, []string{"Canada", "UK"}, resp.CountryOptions)
		})
	}
}

func TestArtistController_ListArtists_EventCounts(t *testing.T) {
	ctrl := NewArtistController(testLogger, &fakeStateReader{state: catalogSnapshot()})
	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	rr := httptest.NewRecorder()

	ctrl.ListArtists(rr, req)

	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	var resp ListArtistsResponse
	decodeData(t, envelope, &resp)

	counts := map[string]int{}
	initials := map[string]string{}
	for _, a := range resp.Artists {
		counts[a.ID] = a.EventCount
		initials[a.ID] = a.Initials
	}
	assert.Equal(t, 2, counts["ar-1"], "ar-1 plays ev-1 and ev-2")
	assert.Equal(t, 1, counts["ar-2"])
	assert.Equal(t, 1, counts["ar-3"])
	assert.Equal(t, "AM", initials["ar-1"])
	assert.Equal(t, "TW", initials["ar-3"])
}

func TestArtistController_GetArtistByID(t *testing.T) {
	t.Run("success with events and reviews", func(t *testing.T) {
		ctrl := NewArtistController(testLogger, &fakeStateReader{state: catalogSnapshot()})
		req := httptest.NewRequest(http.MethodGet, "/artists/ar-1", nil)
		req.SetPathValue("artistID", "ar-1")
		rr := httptest.NewRecorder()

		ctrl.GetArtistByID(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)

		var detail ArtistDetailResponse
		decodeData(t, envelope, &detail)
		assert.Equal(t, "Arctic Monkeys", detail.Artist.Name)
		assert.Equal(t, 2, detail.Artist.EventCount)

		gotIDs := make([]string, 0, len(detail.Events))
		for _, ev := range detail.Events {
			gotIDs = append(gotIDs, ev.ID)
		}
		assert.Equal(t, []string{"ev-1", "ev-2"}, gotIDs, "artist events sorted by datetime")

		require.NotNil(t, detail.AverageRating)
		assert.InDelta(t, 3.0, *detail.AverageRating, 0.001)
		assert.Equal(t, 1, detail.ReviewCount)
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := NewArtistController(testLogger, &fakeStateReader{state: catalogSnapshot()})
		req := httptest.NewRequest(http.MethodGet, "/artists/ar-missing", nil)
		req.SetPathValue("artistID", "ar-missing")
		rr := httptest.NewRecorder()

		ctrl.GetArtistByID(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}
