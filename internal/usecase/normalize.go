package usecase

import (
	"time"

	"stagefront/internal/domain"
)

// ticketmasterIDPrefix is prepended to every externally sourced id so synced
// records can never collide with seed-provided ids.
const ticketmasterIDPrefix = "tm-"

// Venue placeholders used when the source omits a field.
const (
	unknownVenueName = "Unknown venue"
	unknownPlace     = "—"
)

// NormalizeDiscovery flattens a raw Discovery response into deduplicated
// domain collections. Each raw event yields exactly one Event; artists are
// extracted once per unique attraction id with the first occurrence's fields
// winning. Missing nested fields are substituted with documented fallbacks,
// never raised as errors; now is used when an event has no start datetime.
func NormalizeDiscovery(resp *DiscoveryResponse, now time.Time) ([]domain.Artist, []domain.Event) {
	artists := []domain.Artist{}
	events := []domain.Event{}
	if resp == nil || resp.Embedded == nil {
		return artists, events
	}

	seenArtists := make(map[string]struct{})
	for _, raw := range resp.Embedded.Events {
		events = append(events, normalizeEvent(raw, now))

		if raw.Embedded == nil {
			continue
		}
		for _, attraction := range raw.Embedded.Attractions {
			id := ticketmasterIDPrefix + attraction.ID
			if _, ok := seenArtists[id]; ok {
				continue
			}
			seenArtists[id] = struct{}{}
			artists = append(artists, normalizeAttraction(attraction))
		}
	}

	// Residual duplicate ids (e.g. the same event returned twice) are dropped
	// in full, first-seen order kept.
	artists = domain.DedupeByID(artists, func(a domain.Artist) string { return a.ID })
	events = domain.DedupeByID(events, func(e domain.Event) string { return e.ID })
	return artists, events
}

func normalizeEvent(raw DiscoveryEvent, now time.Time) domain.Event {
	ev := domain.Event{
		ID:       ticketmasterIDPrefix + raw.ID,
		Title:    raw.Name,
		Type:     domain.EventTypeConcert,
		Datetime: now.Format(time.RFC3339),
		Venue: domain.Venue{
			Name:    unknownVenueName,
			City:    unknownPlace,
			Country: unknownPlace,
		},
		ArtistIDs:   []string{},
		Description: raw.Info,
		ExternalIDs: map[string]string{"ticketmasterEventId": raw.ID},
	}
	if ev.Description == "" {
		ev.Description = raw.PleaseNote
	}
	if raw.Dates != nil && raw.Dates.Start != nil && raw.Dates.Start.DateTime != "" {
		ev.Datetime = raw.Dates.Start.DateTime
	}
	if len(raw.Images) > 0 {
		ev.ImageURL = raw.Images[0].URL
	}
	if len(raw.PriceRanges) > 0 {
		min := raw.PriceRanges[0].Min
		ev.PriceFrom = &min
	}
	if raw.Embedded != nil {
		if len(raw.Embedded.Venues) > 0 {
			venue := raw.Embedded.Venues[0]
			if venue.Name != "" {
				ev.Venue.Name = venue.Name
			}
			if venue.City != nil && venue.City.Name != "" {
				ev.Venue.City = venue.City.Name
			}
			if venue.Country != nil && venue.Country.Name != "" {
				ev.Venue.Country = venue.Country.Name
			}
		}
		for _, attraction := range raw.Embedded.Attractions {
			ev.ArtistIDs = append(ev.ArtistIDs, ticketmasterIDPrefix+attraction.ID)
		}
	}
	return ev
}

func normalizeAttraction(raw DiscoveryAttraction) domain.Artist {
	artist := domain.Artist{
		ID:          ticketmasterIDPrefix + raw.ID,
		Name:        raw.Name,
		ExternalIDs: map[string]string{"ticketmasterAttractionId": raw.ID},
	}
	if len(raw.Images) > 0 {
		artist.ImageURL = raw.Images[0].URL
	}
	for _, c := range raw.Classifications {
		if c.Genre != nil && c.Genre.Name != "" {
			artist.Genre = append(artist.Genre, c.Genre.Name)
		}
	}
	return artist
}
