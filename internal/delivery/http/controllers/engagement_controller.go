package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"stagefront/internal/delivery/http/helpers"
	"stagefront/internal/domain"
	"stagefront/internal/services"
)

// CreateReviewRequest is the request body for POST /reviews.
// Field-level validation happens in the engagement service so that the
// rules apply regardless of transport.
type CreateReviewRequest struct {
	TargetType string `json:"target_type"`
	TargetID   string `json:"target_id"`
	Rating     int    `json:"rating"`
	Author     string `json:"author"`
	Comment    string `json:"comment"`
}

func (r CreateReviewRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.TargetID) == "" {
		errs = append(errs, "target_id is required")
	}
	return errs
}

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Qty     int    `json:"qty"`
}

func (r CreateReservationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// ListReviewsResponse is the response body for GET /reviews.
type ListReviewsResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating *float64        `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
}

// ListReservationsResponse is the response body for GET /events/{eventID}/reservations.
type ListReservationsResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
	TotalQty     int                  `json:"total_qty"`
}

type EngagementController struct {
	Logger  *slog.Logger
	Service services.EngagementService
	State   StateReader
}

func NewEngagementController(logger *slog.Logger, service services.EngagementService, stateReader StateReader) *EngagementController {
	return &EngagementController{
		Logger:  logger,
		Service: service,
		State:   stateReader,
	}
}

// CreateReview godoc
// @Summary Submit a review
// @Description Submit a review for an event or an artist. Rating must be 1-5, the comment at least 5 characters.
// @Tags engagement
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review to submit"
// @Success 201 {object} helpers.APIResponse "data contains the created review"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /reviews [post]
func (c *EngagementController) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	review, err := c.Service.SubmitReview(r.Context(), domain.ReviewInput{
		TargetType: domain.TargetType(req.TargetType),
		TargetID:   req.TargetID,
		Rating:     req.Rating,
		Author:     req.Author,
		Comment:    req.Comment,
	})
	if err != nil {
		c.writeEngagementError(w, err, "submit review")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, review)
}

// ListReviews godoc
// @Summary List reviews for a target
// @Description Reviews for one event or artist, newest first, with the one-decimal average rating.
// @Tags engagement
// @Produce json
// @Param target_type query string true "Target type: event or artist"
// @Param target_id query string true "Target id"
// @Success 200 {object} helpers.APIResponse "data contains ListReviewsResponse"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /reviews [get]
func (c *EngagementController) ListReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	targetType := domain.TargetType(q.Get("target_type"))
	targetID := q.Get("target_id")
	if targetType != domain.TargetTypeEvent && targetType != domain.TargetTypeArtist {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "target_type must be event or artist")
		return
	}
	if targetID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "target_id is required")
		return
	}

	snap := c.State.Snapshot()
	reviews := services.ReviewsFor(snap.Reviews, targetType, targetID)
	resp := ListReviewsResponse{
		Reviews:     reviews,
		ReviewCount: len(reviews),
	}
	if avg, ok := services.AverageRating(snap.Reviews, targetType, targetID); ok {
		resp.AverageRating = &avg
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// CreateReservation godoc
// @Summary Submit a reservation
// @Description Reserve 1-10 spots for an event. A confirmation email is sent best-effort when a mailer is configured.
// @Tags engagement
// @Accept json
// @Produce json
// @Param reservation body CreateReservationRequest true "Reservation to submit"
// @Success 201 {object} helpers.APIResponse "data contains the created reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /reservations [post]
func (c *EngagementController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reservation, err := c.Service.SubmitReservation(r.Context(), domain.ReservationInput{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Qty:     req.Qty,
	})
	if err != nil {
		c.writeEngagementError(w, err, "submit reservation")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reservation)
}

// ListEventReservations godoc
// @Summary List reservations for an event
// @Tags engagement
// @Produce json
// @Param eventID path string true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains ListReservationsResponse"
// @Router /events/{eventID}/reservations [get]
func (c *EngagementController) ListEventReservations(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	snap := c.State.Snapshot()

	reservations := services.ReservationsForEvent(snap.Reservations, eventID)
	total := 0
	for _, res := range reservations {
		total += res.Qty
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListReservationsResponse{
		Reservations: reservations,
		TotalQty:     total,
	})
}

func (c *EngagementController) writeEngagementError(w http.ResponseWriter, err error, action string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, validationErr.Error())
		return
	}
	c.Logger.Error("failed to "+action, "error", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "something went wrong")
}
