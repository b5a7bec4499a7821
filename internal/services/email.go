package services

import (
	"context"
	"fmt"
	"log"

	"stagefront/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendReservationConfirmation sends the reservation confirmation email using
// the "reservation_confirmation" template and the given data.
func (s *emailService) SendReservationConfirmation(ctx context.Context, data *domain.ReservationEmailData) error {
	if data == nil {
		return fmt.Errorf("reservation confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reservation_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render reservation_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reservation confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Reservation confirmation sent to %s", data.Email)
	return nil
}
