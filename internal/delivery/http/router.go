package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"stagefront/internal/delivery/http/controllers"
	"stagefront/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	artistController *controllers.ArtistController,
	engagementController *controllers.EngagementController,
	catalogController *controllers.CatalogController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Catalog views
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEventByID)
	mux.HandleFunc("GET /artists", artistController.ListArtists)
	mux.HandleFunc("GET /artists/{artistID}", artistController.GetArtistByID)

	// Engagement
	mux.HandleFunc("POST /reviews", engagementController.CreateReview)
	mux.HandleFunc("GET /reviews", engagementController.ListReviews)
	mux.HandleFunc("POST /reservations", engagementController.CreateReservation)
	mux.HandleFunc("GET /events/{eventID}/reservations", engagementController.ListEventReservations)

	// Catalog management
	mux.HandleFunc("POST /catalog/sync", catalogController.SyncCatalog)
	mux.HandleFunc("GET /catalog/status", catalogController.GetCatalogStatus)
	mux.HandleFunc("PATCH /catalog/filters", catalogController.UpdateFilters)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
