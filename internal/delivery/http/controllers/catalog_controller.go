package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"stagefront/internal/delivery/http/helpers"
	"stagefront/internal/domain"
	"stagefront/internal/usecase"
)

// SyncCatalogRequest is the request body for POST /catalog/sync.
// All fields are optional; zero values fall back to the fetcher defaults.
type SyncCatalogRequest struct {
	CountryCode string `json:"country_code"`
	Keyword     string `json:"keyword"`
	Size        int    `json:"size"`
}

func (r SyncCatalogRequest) Validate() []string {
	var errs []string
	if r.CountryCode != "" && len(r.CountryCode) != 2 {
		errs = append(errs, "country_code must be a two-letter ISO code")
	}
	if r.Size < 0 || r.Size > 200 {
		errs = append(errs, "size must be between 0 and 200")
	}
	return errs
}

// CatalogStatusResponse is the response body for GET /catalog/status.
type CatalogStatusResponse struct {
	ArtistCount      int            `json:"artist_count"`
	EventCount       int            `json:"event_count"`
	ReviewCount      int            `json:"review_count"`
	ReservationCount int            `json:"reservation_count"`
	LastSyncSource   string         `json:"last_sync_source,omitempty"`
	LastSyncAt       *time.Time     `json:"last_sync_at,omitempty"`
	Filters          domain.Filters `json:"filters"`
}

type CatalogController struct {
	Logger *slog.Logger
	Sync   usecase.CatalogSyncUseCase
	State  StateReader
}

func NewCatalogController(logger *slog.Logger, sync usecase.CatalogSyncUseCase, stateReader StateReader) *CatalogController {
	return &CatalogController{
		Logger: logger,
		Sync:   sync,
		State:  stateReader,
	}
}

// SyncCatalog godoc
// @Summary Sync the catalog from Ticketmaster
// @Description Fetches music events from the Ticketmaster Discovery API, normalizes them, and atomically replaces the catalog. Reviews, reservations, and filters are kept.
// @Tags catalog
// @Accept json
// @Produce json
// @Param params body SyncCatalogRequest false "Search overrides"
// @Success 200 {object} helpers.APIResponse "data contains usecase.SyncResult"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Failure 503 {object} helpers.APIResponse "error.code: upstream_error (API key missing)"
// @Router /catalog/sync [post]
func (c *CatalogController) SyncCatalog(w http.ResponseWriter, r *http.Request) {
	req := SyncCatalogRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
	}

	result, err := c.Sync.Sync(r.Context(), usecase.SearchParams{
		CountryCode: req.CountryCode,
		Keyword:     req.Keyword,
		Size:        req.Size,
	})
	if err != nil {
		c.writeSyncError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// GetCatalogStatus godoc
// @Summary Catalog status
// @Description Catalog sizes, the last successful sync, and the stored filter selection.
// @Tags catalog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains CatalogStatusResponse"
// @Router /catalog/status [get]
func (c *CatalogController) GetCatalogStatus(w http.ResponseWriter, r *http.Request) {
	snap := c.State.Snapshot()
	helpers.WriteJSONSuccess(w, http.StatusOK, CatalogStatusResponse{
		ArtistCount:      len(snap.Artists),
		EventCount:       len(snap.Events),
		ReviewCount:      len(snap.Reviews),
		ReservationCount: len(snap.Reservations),
		LastSyncSource:   snap.LastSyncSource,
		LastSyncAt:       snap.LastSyncAt,
		Filters:          snap.Filters,
	})
}

// UpdateFilters godoc
// @Summary Update the stored filter selection
// @Description Shallow-merges the provided fields into the stored filter selection and returns the result. Omitted fields keep their current value.
// @Tags catalog
// @Accept json
// @Produce json
// @Param patch body domain.FilterPatch true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains domain.Filters"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /catalog/filters [patch]
func (c *CatalogController) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var patch domain.FilterPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	if patch.TypeFilter != nil {
		switch *patch.TypeFilter {
		case domain.TypeFilterAll, string(domain.EventTypeConcert), string(domain.EventTypeFestival):
		default:
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "type_filter must be all, concert, or festival")
			return
		}
	}
	filters := c.State.SetFilters(r.Context(), patch)
	helpers.WriteJSONSuccess(w, http.StatusOK, filters)
}

func (c *CatalogController) writeSyncError(w http.ResponseWriter, err error) {
	var configErr *domain.ConfigurationError
	if errors.As(err, &configErr) {
		c.Logger.Error("catalog sync misconfigured", "error", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUpstreamError, configErr.Error())
		return
	}
	var remoteErr *domain.RemoteError
	if errors.As(err, &remoteErr) {
		c.Logger.Error("catalog sync rejected upstream", "status", remoteErr.Status)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstreamError, fmt.Sprintf("discovery API responded with status %d", remoteErr.Status))
		return
	}
	c.Logger.Error("catalog sync failed", "error", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "something went wrong")
}
