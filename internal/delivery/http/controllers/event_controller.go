package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"stagefront/internal/delivery/http/helpers"
	"stagefront/internal/domain"
	"stagefront/internal/services"
	"stagefront/internal/state"
)

// StateReader is the slice of the application state store the read
// controllers depend on.
type StateReader interface {
	Snapshot() state.State
	SetFilters(ctx context.Context, patch domain.FilterPatch) domain.Filters
}

// EventView is an event enriched with display-ready derived fields.
// swagger:model EventView
type EventView struct {
	domain.Event
	ArtistNames []string `json:"artist_names"`
	DisplayDate string   `json:"display_date"`
	Upcoming    bool     `json:"upcoming"`
}

func newEventView(ev domain.Event, artists []domain.Artist, now time.Time) EventView {
	return EventView{
		Event:       ev,
		ArtistNames: services.ResolveArtistNames(artists, ev.ArtistIDs),
		DisplayDate: domain.FormatEventDate(ev),
		Upcoming:    domain.IsUpcoming(ev, now),
	}
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events []EventView            `json:"events"`
	Meta   helpers.PaginationMeta `json:"meta"`
}

// EventDetailResponse is the response body for GET /events/{eventID}.
type EventDetailResponse struct {
	Event         EventView       `json:"event"`
	AverageRating *float64        `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	Reviews       []domain.Review `json:"reviews"`
	Related       []EventView     `json:"related"`
}

// relatedEventLimit caps the "you may also like" list.
const relatedEventLimit = 3

type EventController struct {
	Logger *slog.Logger
	State  StateReader
}

func NewEventController(logger *slog.Logger, stateReader StateReader) *EventController {
	return &EventController{
		Logger: logger,
		State:  stateReader,
	}
}

// ListEvents godoc
// @Summary List events
// @Description List catalog events filtered by the stored filter selection, sorted by datetime ascending and paginated. Query parameters override the stored selection for this request only.
// @Tags events
// @Produce json
// @Param search query string false "Free-text search over title, venue, and artist names"
// @Param type query string false "Event type filter: all, concert, or festival"
// @Param artist query string false "Artist id the event must reference"
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains ListEventsResponse"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	snap := c.State.Snapshot()
	filters := overrideFilters(snap.Filters, r)

	filtered := services.FilterEvents(snap.Events, snap.Artists, filters)
	params := helpers.ParsePagination(r)
	window := domain.Paginate(filtered, params)

	now := time.Now()
	events := make([]EventView, 0, len(window.Items))
	for _, ev := range window.Items {
		events = append(events, newEventView(ev, snap.Artists, now))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events: events,
		Meta:   helpers.NewPaginationMeta(params.Page, params.PageSize, window),
	})
}

// GetEventByID godoc
// @Summary Get one event
// @Description Event detail with resolved artist names, review aggregate, reviews, and up to 3 related events (same city, else shared artist).
// @Tags events
// @Produce json
// @Param eventID path string true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains EventDetailResponse"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	snap := c.State.Snapshot()

	var event *domain.Event
	for i := range snap.Events {
		if snap.Events[i].ID == eventID {
			event = &snap.Events[i]
			break
		}
	}
	if event == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}

	now := time.Now()
	reviews := services.ReviewsFor(snap.Reviews, domain.TargetTypeEvent, eventID)
	detail := EventDetailResponse{
		Event:       newEventView(*event, snap.Artists, now),
		ReviewCount: len(reviews),
		Reviews:     reviews,
	}
	if avg, ok := services.AverageRating(snap.Reviews, domain.TargetTypeEvent, eventID); ok {
		detail.AverageRating = &avg
	}
	for _, related := range services.RelatedEvents(snap.Events, *event, relatedEventLimit) {
		detail.Related = append(detail.Related, newEventView(related, snap.Artists, now))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// overrideFilters applies filter query parameters, when present, on top of
// the stored filter selection. The stored selection is not mutated.
func overrideFilters(filters domain.Filters, r *http.Request) domain.Filters {
	q := r.URL.Query()
	if q.Has("search") {
		filters.Search = q.Get("search")
	}
	if q.Has("type") {
		filters.TypeFilter = q.Get("type")
	}
	if q.Has("artist") {
		filters.ArtistFilter = q.Get("artist")
	}
	return filters
}
