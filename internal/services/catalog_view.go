package services

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stagefront/internal/domain"
)

// ViewPageSize is the fixed page size for catalog list views.
const ViewPageSize = 20

// UnknownArtistName stands in for a dangling artist reference. Missing
// lookups are never an error.
const UnknownArtistName = "Unknown artist"

// The view query pipeline: pure derivations over a state snapshot. Nothing
// here mutates the store; applying the same filters to the same snapshot
// always yields the same result.

// FilterEvents returns the events matching the filter selection, sorted
// ascending by datetime. The search term matches case-insensitively against
// title, venue fields, and resolved artist names; dangling artist ids
// contribute nothing to the haystack.
func FilterEvents(events []domain.Event, artists []domain.Artist, f domain.Filters) []domain.Event {
	nameByID := make(map[string]string, len(artists))
	for _, a := range artists {
		nameByID[a.ID] = a.Name
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if f.TypeFilter != "" && f.TypeFilter != domain.TypeFilterAll && string(ev.Type) != f.TypeFilter {
			continue
		}
		if f.ArtistFilter != "" && !containsString(ev.ArtistIDs, f.ArtistFilter) {
			continue
		}
		if search != "" {
			var names []string
			for _, id := range ev.ArtistIDs {
				names = append(names, nameByID[id])
			}
			hay := strings.ToLower(ev.Title + " " + ev.Venue.City + " " + ev.Venue.Country + " " +
				ev.Venue.Name + " " + strings.Join(names, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		out = append(out, ev)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return eventTime(out[i]).Before(eventTime(out[j]))
	})
	return out
}

// FilterArtists returns the artists matching the query, sorted by name with
// locale-aware collation.
func FilterArtists(artists []domain.Artist, q domain.ArtistQuery) []domain.Artist {
	out := make([]domain.Artist, 0, len(artists))
	for _, a := range artists {
		if q.Genre != "" && !containsString(a.Genre, q.Genre) {
			continue
		}
		if q.Country != "" && a.Country != q.Country {
			continue
		}
		if !domain.ArtistMatchesQuery(a, q.Search) {
			continue
		}
		out = append(out, a)
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// EventCountByArtist counts, per artist id, the events referencing it.
func EventCountByArtist(events []domain.Event) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		for _, id := range ev.ArtistIDs {
			counts[id]++
		}
	}
	return counts
}

// AverageRating returns the arithmetic mean of the matching reviews' ratings
// rounded to one decimal, and false when there are no matching reviews.
func AverageRating(reviews []domain.Review, targetType domain.TargetType, targetID string) (float64, bool) {
	sum, count := 0, 0
	for _, r := range reviews {
		if r.TargetType == targetType && r.TargetID == targetID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	avg := float64(sum) / float64(count)
	return float64(int(avg*10+0.5)) / 10, true
}

// ReviewsFor returns the reviews for one target, in submission order.
func ReviewsFor(reviews []domain.Review, targetType domain.TargetType, targetID string) []domain.Review {
	out := []domain.Review{}
	for _, r := range reviews {
		if r.TargetType == targetType && r.TargetID == targetID {
			out = append(out, r)
		}
	}
	return out
}

// ReservationsForEvent returns the reservations for one event, in submission order.
func ReservationsForEvent(reservations []domain.Reservation, eventID string) []domain.Reservation {
	out := []domain.Reservation{}
	for _, r := range reservations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// RelatedEvents returns up to limit other events in the same city, falling
// back to events sharing at least one artist when no city matches exist.
func RelatedEvents(events []domain.Event, ev domain.Event, limit int) []domain.Event {
	sameCity := []domain.Event{}
	for _, other := range events {
		if other.ID == ev.ID || other.Venue.City != ev.Venue.City {
			continue
		}
		sameCity = append(sameCity, other)
		if len(sameCity) == limit {
			break
		}
	}
	if len(sameCity) > 0 {
		return sameCity
	}

	byArtist := []domain.Event{}
	for _, other := range events {
		if other.ID == ev.ID || !sharesArtist(other, ev) {
			continue
		}
		byArtist = append(byArtist, other)
		if len(byArtist) == limit {
			break
		}
	}
	return byArtist
}

// ResolveArtistNames maps artist ids to display names, substituting
// UnknownArtistName for dangling references.
func ResolveArtistNames(artists []domain.Artist, ids []string) []string {
	nameByID := make(map[string]string, len(artists))
	for _, a := range artists {
		nameByID[a.ID] = a.Name
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := nameByID[id]
		if !ok {
			name = UnknownArtistName
		}
		out = append(out, name)
	}
	return out
}

// GenreOptions returns the distinct genre tags across all artists, sorted.
func GenreOptions(artists []domain.Artist) []string {
	return distinct(artists, func(a domain.Artist) []string { return a.Genre })
}

// CountryOptions returns the distinct artist countries, sorted.
func CountryOptions(artists []domain.Artist) []string {
	return distinct(artists, func(a domain.Artist) []string {
		if a.Country == "" {
			return nil
		}
		return []string{a.Country}
	})
}

func distinct(artists []domain.Artist, values func(domain.Artist) []string) []string {
	set := make(map[string]struct{})
	for _, a := range artists {
		for _, v := range values(a) {
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool { return c.CompareString(out[i], out[j]) < 0 })
	return out
}

func eventTime(ev domain.Event) time.Time {
	t, err := time.Parse(time.RFC3339, ev.Datetime)
	if err != nil {
		return time.Time{}
	}
	return t
}

func sharesArtist(a, b domain.Event) bool {
	for _, id := range a.ArtistIDs {
		if containsString(b.ArtistIDs, id) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
