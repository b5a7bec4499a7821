package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"stagefront/internal/delivery/http/helpers"
	"stagefront/internal/domain"
	"stagefront/internal/services"
)

// ArtistView is an artist enriched with display-ready derived fields.
// swagger:model ArtistView
type ArtistView struct {
	domain.Artist
	Initials   string `json:"initials"`
	EventCount int    `json:"event_count"`
}

// ListArtistsResponse is the response body for GET /artists.
type ListArtistsResponse struct {
	Artists        []ArtistView           `json:"artists"`
	GenreOptions   []string               `json:"genre_options"`
	CountryOptions []string               `json:"country_options"`
	Meta           helpers.PaginationMeta `json:"meta"`
}

// ArtistDetailResponse is the response body for GET /artists/{artistID}.
type ArtistDetailResponse struct {
	Artist        ArtistView      `json:"artist"`
	Events        []EventView     `json:"events"`
	AverageRating *float64        `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	Reviews       []domain.Review `json:"reviews"`
}

type ArtistController struct {
	Logger *slog.Logger
	State  StateReader
}

func NewArtistController(logger *slog.Logger, stateReader StateReader) *ArtistController {
	return &ArtistController{
		Logger: logger,
		State:  stateReader,
	}
}

// ListArtists godoc
// @Summary List artists
// @Description List catalog artists filtered by free-text search, genre, and country, sorted by name (case-insensitive, locale-aware) and paginated. Includes the distinct genre and country facet options for the full catalog.
// @Tags artists
// @Produce json
// @Param search query string false "Free-text search over artist names"
// @Param genre query string false "Genre the artist must carry"
// @Param country query string false "Exact country match"
// @Param page query int false "1-indexed page number"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains ListArtistsResponse"
// @Router /artists [get]
func (c *ArtistController) ListArtists(w http.ResponseWriter, r *http.Request) {
	snap := c.State.Snapshot()
	q := r.URL.Query()
	query := domain.ArtistQuery{
		Search:  q.Get("search"),
		Genre:   q.Get("genre"),
		Country: q.Get("country"),
	}

	filtered := services.FilterArtists(snap.Artists, query)
	params := helpers.ParsePagination(r)
	window := domain.Paginate(filtered, params)

	counts := services.EventCountByArtist(snap.Events)
	artists := make([]ArtistView, 0, len(window.Items))
	for _, a := range window.Items {
		artists = append(artists, ArtistView{
			Artist:     a,
			Initials:   domain.AvatarInitials(a),
			EventCount: counts[a.ID],
		})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListArtistsResponse{
		Artists:        artists,
		GenreOptions:   services.GenreOptions(snap.Artists),
		CountryOptions: services.CountryOptions(snap.Artists),
		Meta:           helpers.NewPaginationMeta(params.Page, params.PageSize, window),
	})
}

// GetArtistByID godoc
// @Summary Get one artist
// @Description Artist detail with their upcoming and past events, review aggregate, and reviews.
// @Tags artists
// @Produce json
// @Param artistID path string true "Artist id"
// @Success 200 {object} helpers.APIResponse "data contains ArtistDetailResponse"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /artists/{artistID} [get]
func (c *ArtistController) GetArtistByID(w http.ResponseWriter, r *http.Request) {
	artistID := r.PathValue("artistID")
	snap := c.State.Snapshot()

	var artist *domain.Artist
	for i := range snap.Artists {
		if snap.Artists[i].ID == artistID {
			artist = &snap.Artists[i]
			break
		}
	}
	if artist == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "artist not found")
		return
	}

	artistFilters := domain.DefaultFilters()
	artistFilters.ArtistFilter = artistID
	artistEvents := services.FilterEvents(snap.Events, snap.Artists, artistFilters)

	now := time.Now()
	counts := services.EventCountByArtist(snap.Events)
	reviews := services.ReviewsFor(snap.Reviews, domain.TargetTypeArtist, artistID)
	detail := ArtistDetailResponse{
		Artist: ArtistView{
			Artist:     *artist,
			Initials:   domain.AvatarInitials(*artist),
			EventCount: counts[artistID],
		},
		ReviewCount: len(reviews),
		Reviews:     reviews,
	}
	for _, ev := range artistEvents {
		detail.Events = append(detail.Events, newEventView(ev, snap.Artists, now))
	}
	if avg, ok := services.AverageRating(snap.Reviews, domain.TargetTypeArtist, artistID); ok {
		detail.AverageRating = &avg
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}
