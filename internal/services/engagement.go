package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"stagefront/internal/domain"
)

// emailRegex matches a simple email format (no spaces, one @, a dot in the domain).
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// minCommentLength is the minimum review comment length in characters.
const minCommentLength = 5

// Reservation quantity bounds, inclusive.
const (
	minReservationQty = 1
	maxReservationQty = 10
)

// EngagementStore is the slice of the state store submissions commit into.
type EngagementStore interface {
	AddReview(ctx context.Context, in domain.ReviewInput) domain.Review
	AddReservation(ctx context.Context, in domain.ReservationInput) domain.Reservation
	EventByID(id string) (domain.Event, bool)
}

// EngagementService is the submission boundary for reviews and reservations.
// All field validation happens here; invalid submissions never reach the
// state store.
type EngagementService interface {
	SubmitReview(ctx context.Context, in domain.ReviewInput) (*domain.Review, error)
	SubmitReservation(ctx context.Context, in domain.ReservationInput) (*domain.Reservation, error)
}

type engagementService struct {
	store  EngagementStore
	email  domain.EmailService
	logger *slog.Logger
}

// NewEngagementService creates an EngagementService. email may be nil to
// disable reservation confirmation emails.
func NewEngagementService(store EngagementStore, email domain.EmailService, logger *slog.Logger) EngagementService {
	return &engagementService{
		store:  store,
		email:  email,
		logger: logger,
	}
}

func (s *engagementService) SubmitReview(ctx context.Context, in domain.ReviewInput) (*domain.Review, error) {
	in.Author = strings.TrimSpace(in.Author)
	in.Comment = strings.TrimSpace(in.Comment)

	var errs []string
	if in.TargetType != domain.TargetTypeEvent && in.TargetType != domain.TargetTypeArtist {
		errs = append(errs, "target_type must be event or artist")
	}
	if in.TargetID == "" {
		errs = append(errs, "target_id is required")
	}
	if in.Author == "" {
		errs = append(errs, "author is required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		errs = append(errs, "rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(in.Comment) < minCommentLength {
		errs = append(errs, "comment must be at least 5 characters")
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	review := s.store.AddReview(ctx, in)
	return &review, nil
}

func (s *engagementService) SubmitReservation(ctx context.Context, in domain.ReservationInput) (*domain.Reservation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	var errs []string
	if in.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if in.Name == "" {
		errs = append(errs, "name is required")
	}
	if !emailRegex.MatchString(in.Email) {
		errs = append(errs, "email must be a valid address")
	}
	if in.Qty < minReservationQty || in.Qty > maxReservationQty {
		errs = append(errs, "quantity must be between 1 and 10")
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	reservation := s.store.AddReservation(ctx, in)
	s.sendConfirmation(ctx, reservation)
	return &reservation, nil
}

// sendConfirmation sends the reservation confirmation email best-effort: a
// mailer failure is logged and never fails the committed reservation.
func (s *engagementService) sendConfirmation(ctx context.Context, reservation domain.Reservation) {
	if s.email == nil {
		return
	}
	data := &domain.ReservationEmailData{
		Email: reservation.Email,
		Name:  reservation.Name,
		Qty:   reservation.Qty,
	}
	if ev, ok := s.store.EventByID(reservation.EventID); ok {
		data.EventTitle = ev.Title
		data.EventDate = domain.FormatEventDate(ev)
	} else {
		data.EventTitle = "your event"
	}
	if err := s.email.SendReservationConfirmation(ctx, data); err != nil {
		s.logger.Warn("failed to send reservation confirmation",
			"reservation_id", reservation.ID, "err", err)
	}
}
