package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stagefront/internal/domain"
)

func viewFixture() ([]domain.Artist, []domain.Event) {
	artists := []domain.Artist{
		{ID: "ar-1", Name: "Arctic Monkeys", Genre: []string{"Indie Rock"}, Country: "UK"},
		{ID: "ar-2", Name: "Dua Lipa", Genre: []string{"Pop"}, Country: "UK"},
		{ID: "ar-3", Name: "The Weeknd", Genre: []string{"R&B", "Pop"}, Country: "Canada"},
	}
	events := []domain.Event{
		{
			ID: "ev-2", Title: "Dua Lipa Tour", Type: domain.EventTypeConcert,
			Datetime: "2025-10-03T19:30:00Z",
			Venue:    domain.Venue{Name: "Arena Zagreb", City: "Zagreb", Country: "Croatia"},
			ArtistIDs: []string{"ar-2"},
		},
		{
			ID: "ev-1", Title: "Arctic Monkeys Live", Type: domain.EventTypeConcert,
			Datetime: "2025-09-14T20:00:00Z",
			Venue:    domain.Venue{Name: "Štark Arena", City: "Belgrade", Country: "Serbia"},
			ArtistIDs: []string{"ar-1"},
		},
		{
			ID: "ev-3", Title: "Summer Fest", Type: domain.EventTypeFestival,
			Datetime: "2025-08-30T18:00:00Z",
			Venue:    domain.Venue{Name: "Petőfi Csarnok", City: "Budapest", Country: "Hungary"},
			ArtistIDs: []string{"ar-1", "ar-2", "ar-3"},
		},
	}
	return artists, events
}

func TestFilterEvents(t *testing.T) {
	artists, events := viewFixture()

	tests := []struct {
		name    string
		filters domain.Filters
		wantIDs []string
	}{
		{
			name:    "no filters sorts by datetime ascending",
			filters: domain.DefaultFilters(),
			wantIDs: []string{"ev-3", "ev-1", "ev-2"},
		},
		{
			name:    "type filter",
			filters: domain.Filters{TypeFilter: "festival"},
			wantIDs: []string{"ev-3"},
		},
		{
			name:    "artist filter",
			filters: domain.Filters{TypeFilter: domain.TypeFilterAll, ArtistFilter: "ar-2"},
			wantIDs: []string{"ev-3", "ev-2"},
		},
		{
			name:    "search by city",
			filters: domain.Filters{TypeFilter: domain.TypeFilterAll, Search: "zagreb"},
			wantIDs: []string{"ev-2"},
		},
		{
			name:    "search by resolved artist name",
			filters: domain.Filters{TypeFilter: domain.TypeFilterAll, Search: "weeknd"},
			wantIDs: []string{"ev-3"},
		},
		{
			name:    "search with no match",
			filters: domain.Filters{TypeFilter: domain.TypeFilterAll, Search: "opera"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEvents(events, artists, tt.filters)
			ids := make([]string, 0, len(got))
			for _, ev := range got {
				ids = append(ids, ev.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterEvents_Pure(t *testing.T) {
	artists, events := viewFixture()
	filters := domain.Filters{TypeFilter: domain.TypeFilterAll, Search: "arctic"}

	first := FilterEvents(events, artists, filters)
	second := FilterEvents(events, artists, filters)
	require.Equal(t, first, second)
}

func TestFilterEvents_DanglingArtistRef(t *testing.T) {
	events := []domain.Event{
		{ID: "ev-x", Title: "Mystery Show", Type: domain.EventTypeConcert,
			Datetime: "2025-07-01T20:00:00Z", ArtistIDs: []string{"ghost-artist"}},
	}

	// A dangling reference filters fine and resolves to a fallback name.
	got := FilterEvents(events, nil, domain.Filters{TypeFilter: domain.TypeFilterAll, Search: "mystery"})
	require.Len(t, got, 1)
	require.Equal(t, []string{UnknownArtistName}, ResolveArtistNames(nil, got[0].ArtistIDs))
}

func TestFilterArtists(t *testing.T) {
	artists, _ := viewFixture()

	tests := []struct {
		name      string
		query     domain.ArtistQuery
		wantNames []string
	}{
		{
			name:      "no query sorts by name",
			query:     domain.ArtistQuery{},
			wantNames: []string{"Arctic Monkeys", "Dua Lipa", "The Weeknd"},
		},
		{
			name:      "genre membership",
			query:     domain.ArtistQuery{Genre: "Pop"},
			wantNames: []string{"Dua Lipa", "The Weeknd"},
		},
		{
			name:      "country exact match",
			query:     domain.ArtistQuery{Country: "Canada"},
			wantNames: []string{"The Weeknd"},
		},
		{
			name:      "search over name and genre",
			query:     domain.ArtistQuery{Search: "rock"},
			wantNames: []string{"Arctic Monkeys"},
		},
		{
			name:      "combined filters",
			query:     domain.ArtistQuery{Genre: "Pop", Country: "UK"},
			wantNames: []string{"Dua Lipa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArtists(artists, tt.query)
			names := make([]string, 0, len(got))
			for _, a := range got {
				names = append(names, a.Name)
			}
			require.Equal(t, tt.wantNames, names)
		})
	}
}

func TestEventCountByArtist(t *testing.T) {
	_, events := viewFixture()
	counts := EventCountByArtist(events)
	require.Equal(t, 2, counts["ar-1"])
	require.Equal(t, 2, counts["ar-2"])
	require.Equal(t, 1, counts["ar-3"])
	require.Equal(t, 0, counts["missing"])
}

func TestAverageRating(t *testing.T) {
	reviews := []domain.Review{
		{TargetType: domain.TargetTypeEvent, TargetID: "ev-1", Rating: 5},
		{TargetType: domain.TargetTypeEvent, TargetID: "ev-1", Rating: 4},
		{TargetType: domain.TargetTypeArtist, TargetID: "ev-1", Rating: 1},
	}

	avg, ok := AverageRating(reviews, domain.TargetTypeEvent, "ev-1")
	require.True(t, ok)
	require.Equal(t, 4.5, avg)

	_, ok = AverageRating(reviews, domain.TargetTypeEvent, "ev-2")
	require.False(t, ok, "no reviews means no average")

	avg, ok = AverageRating([]domain.Review{
		{TargetType: domain.TargetTypeEvent, TargetID: "x", Rating: 5},
		{TargetType: domain.TargetTypeEvent, TargetID: "x", Rating: 4},
		{TargetType: domain.TargetTypeEvent, TargetID: "x", Rating: 4},
	}, domain.TargetTypeEvent, "x")
	require.True(t, ok)
	require.Equal(t, 4.3, avg, "rounded to one decimal")
}

func TestRelatedEvents(t *testing.T) {
	base := domain.Event{ID: "ev-0", Venue: domain.Venue{City: "Berlin"}, ArtistIDs: []string{"ar-1"}}

	t.Run("same city wins", func(t *testing.T) {
		events := []domain.Event{
			base,
			{ID: "ev-1", Venue: domain.Venue{City: "Berlin"}},
			{ID: "ev-2", Venue: domain.Venue{City: "Berlin"}},
			{ID: "ev-3", Venue: domain.Venue{City: "Berlin"}},
			{ID: "ev-4", Venue: domain.Venue{City: "Berlin"}},
			{ID: "ev-5", Venue: domain.Venue{City: "Hamburg"}, ArtistIDs: []string{"ar-1"}},
		}
		got := RelatedEvents(events, base, 3)
		require.Len(t, got, 3, "capped at limit")
		for _, ev := range got {
			require.Equal(t, "Berlin", ev.Venue.City)
		}
	})

	t.Run("falls back to shared artist", func(t *testing.T) {
		events := []domain.Event{
			base,
			{ID: "ev-1", Venue: domain.Venue{City: "Hamburg"}, ArtistIDs: []string{"ar-1"}},
			{ID: "ev-2", Venue: domain.Venue{City: "Munich"}, ArtistIDs: []string{"ar-2"}},
		}
		got := RelatedEvents(events, base, 3)
		require.Len(t, got, 1)
		require.Equal(t, "ev-1", got[0].ID)
	})

	t.Run("nothing related", func(t *testing.T) {
		events := []domain.Event{
			base,
			{ID: "ev-2", Venue: domain.Venue{City: "Munich"}, ArtistIDs: []string{"ar-2"}},
		}
		require.Empty(t, RelatedEvents(events, base, 3))
	})
}

func TestResolveArtistNames(t *testing.T) {
	artists, _ := viewFixture()
	got := ResolveArtistNames(artists, []string{"ar-1", "ghost", "ar-3"})
	require.Equal(t, []string{"Arctic Monkeys", UnknownArtistName, "The Weeknd"}, got)
}

func TestGenreAndCountryOptions(t *testing.T) {
	artists, _ := viewFixture()
	require.Equal(t, []string{"Indie Rock", "Pop", "R&B"}, GenreOptions(artists))
	require.Equal(t, []string{"Canada", "UK"}, CountryOptions(artists))
}
