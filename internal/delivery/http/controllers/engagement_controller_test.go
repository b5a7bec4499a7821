package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stagefront/internal/delivery/http/helpers"
	"stagefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngagementService implements services.EngagementService for handler tests.
type fakeEngagementService struct {
	submitReviewErr         error
	submitReservationErr    error
	lastReviewInput         *domain.ReviewInput
	lastReservationInput    *domain.ReservationInput
	submitReviewResult      *domain.Review
	submitReservationResult *domain.Reservation
}

func (f *fakeEngagementService) SubmitReview(_ context.Context, in domain.ReviewInput) (*domain.Review, error) {
	f.lastReviewInput = &in
	if f.submitReviewErr != nil {
		return nil, f.submitReviewErr
	}
	if f.submitReviewResult != nil {
		return f.submitReviewResult, nil
	}
	return &domain.Review{
		ID:         "rev-created",
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Rating:     in.Rating,
		Author:     in.Author,
		Comment:    in.Comment,
		CreatedAt:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeEngagementService) SubmitReservation(_ context.Context, in domain.ReservationInput) (*domain.Reservation, error) {
	f.lastReservationInput = &in
	if f.submitReservationErr != nil {
		return nil, f.submitReservationErr
	}
	if f.submitReservationResult != nil {
		return f.submitReservationResult, nil
	}
	return &domain.Reservation{
		ID:        "res-created",
		EventID:   in.EventID,
		Name:      in.Name,
		Email:     in.Email,
		Qty:       in.Qty,
		CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func TestEngagementController_CreateReview(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"target_type":"event","target_id":"ev-1","rating":5,"author":"Ana","comment":"Great night out"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "unknown field rejected",
			body:           `{"target_id":"ev-1","id":"custom"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "missing target_id",
			body:           `{"target_type":"event","rating":5,"author":"Ana","comment":"Great night"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "target_id is required",
		},
		{
			name:           "validation error from service",
			body:           `{"target_type":"event","target_id":"ev-1","rating":9,"author":"Ana","comment":"Great night"}`,
			fakeErr:        &domain.ValidationError{Messages: []string{"rating must be between 1 and 5"}},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "rating must be between 1 and 5",
		},
		{
			name:           "unexpected service error",
			body:           `{"target_type":"event","target_id":"ev-1","rating":5,"author":"Ana","comment":"Great night"}`,
			fakeErr:        errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEngagementService{submitReviewErr: tt.fakeErr}
			ctrl := NewEngagementController(testLogger, fake, &fakeStateReader{state: catalogSnapshot()})
			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateReview(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				var review domain.Review
				decodeData(t, envelope, &review)
				assert.Equal(t, "rev-created", review.ID)
				assert.Equal(t, domain.TargetTypeEvent, review.TargetType)
				require.NotNil(t, fake.lastReviewInput)
				assert.Equal(t, "ev-1", fake.lastReviewInput.TargetID)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestEngagementController_ListReviews(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantStatus     int
		wantCount      int
		wantAvg        *float64
		wantBodySubstr string
	}{
		{
			name:       "event reviews with average",
			query:      "?target_type=event&target_id=ev-1",
			wantStatus: http.StatusOK,
			wantCount:  2,
			wantAvg:    ptrFloat(4.5),
		},
		{
			name:       "artist reviews",
			query:      "?target_type=artist&target_id=ar-1",
			wantStatus: http.StatusOK,
			wantCount:  1,
			wantAvg:    ptrFloat(3),
		},
		{
			name:       "no reviews",
			query:      "?target_type=event&target_id=ev-3",
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:           "bad target type",
			query:          "?target_type=venue&target_id=ev-1",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "target_type must be event or artist",
		},
		{
			name:           "missing target id",
			query:          "?target_type=event",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "target_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEngagementController(testLogger, &fakeEngagementService{}, &fakeStateReader{state: catalogSnapshot()})
			req := httptest.NewRequest(http.MethodGet, "/reviews"+tt.query, nil)
			rr := httptest.NewRecorder()

			ctrl.ListReviews(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
				return
			}
			var resp ListReviewsResponse
			decodeData(t, envelope, &resp)
			assert.Equal(t, tt.wantCount, resp.ReviewCount)
			assert.Len(t, resp.Reviews, tt.wantCount)
			if tt.wantAvg == nil {
				assert.Nil(t, resp.AverageRating)
			} else {
				require.NotNil(t, resp.AverageRating)
				assert.InDelta(t, *tt.wantAvg, *resp.AverageRating, 0.001)
			}
		})
	}
}

func TestEngagementController_CreateReservation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"event_id":"ev-1","name":"Ana","email":"ana@example.com","qty":2}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing event_id",
			body:           `{"name":"Ana","email":"ana@example.com","qty":2}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "event_id is required",
		},
		{
			name:           "validation error from service",
			body:           `{"event_id":"ev-1","name":"Ana","email":"not-an-email","qty":2}`,
			fakeErr:        &domain.ValidationError{Messages: []string{"email must be a valid address"}},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email must be a valid address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEngagementService{submitReservationErr: tt.fakeErr}
			ctrl := NewEngagementController(testLogger, fake, &fakeStateReader{state: catalogSnapshot()})
			req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateReservation(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				var reservation domain.Reservation
				decodeData(t, envelope, &reservation)
				assert.Equal(t, "res-created", reservation.ID)
				assert.Equal(t, 2, reservation.Qty)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestEngagementController_ListEventReservations(t *testing.T) {
	ctrl := NewEngagementController(testLogger, &fakeEngagementService{}, &fakeStateReader{state: catalogSnapshot()})
	req := httptest.NewRequest(http.MethodGet, "/events/ev-1/reservations", nil)
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.ListEventReservations(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)

	var resp ListReservationsResponse
	decodeData(t, envelope, &resp)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, 5, resp.TotalQty, "2 + 3 spots reserved")
}

func ptrFloat(v float64) *float64 { return &v }
