package domain

import "time"

// EventType is the kind of live-music event.
type EventType string

// Supported event types.
const (
	EventTypeConcert  EventType = "concert"
	EventTypeFestival EventType = "festival"
)

// Venue is the place an event happens. All fields are required; the
// normalizer substitutes placeholders when the source omits them.
type Venue struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Event represents a live-music event in the catalog. ArtistIDs are weak
// references: an id with no matching artist resolves to "Unknown artist",
// never an error.
// swagger:model Event
type Event struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Type        EventType         `json:"type"`
	Datetime    string            `json:"datetime"`
	Venue       Venue             `json:"venue"`
	ArtistIDs   []string          `json:"artist_ids"`
	ImageURL    string            `json:"image_url,omitempty"`
	PriceFrom   *float64          `json:"price_from,omitempty"`
	Description string            `json:"description,omitempty"`
	ExternalIDs map[string]string `json:"external_ids,omitempty"`
}

// eventDateLayout is the display format for event dates.
const eventDateLayout = "Jan 2, 2006 3:04 PM"

// IsUpcoming reports whether the event starts after ref. Events with an
// unparsable datetime are never upcoming.
func IsUpcoming(e Event, ref time.Time) bool {
	t, err := time.Parse(time.RFC3339, e.Datetime)
	if err != nil {
		return false
	}
	return t.After(ref)
}

// FormatEventDate renders the event datetime for display, falling back to
// the raw string when it cannot be parsed.
func FormatEventDate(e Event) string {
	t, err := time.Parse(time.RFC3339, e.Datetime)
	if err != nil {
		return e.Datetime
	}
	return t.Format(eventDateLayout)
}
