package domain

import "time"

// Reservation is a locally recorded ticket reservation for an event.
// Reservations are append-only, like reviews.
// swagger:model Reservation
type Reservation struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationInput holds the caller-supplied fields of a new reservation.
type ReservationInput struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Qty     int    `json:"qty"`
}
