package domain

import "time"

// TargetType identifies what a review is about.
type TargetType string

// Review target kinds.
const (
	TargetTypeEvent  TargetType = "event"
	TargetTypeArtist TargetType = "artist"
)

// Review is a user-submitted rating and comment for an event or artist.
// Reviews are append-only: never edited or removed.
// swagger:model Review
type Review struct {
	ID         string     `json:"id"`
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Rating     int        `json:"rating"`
	Author     string     `json:"author"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ReviewInput holds the caller-supplied fields of a new review. ID and
// CreatedAt are stamped by the state store on append.
type ReviewInput struct {
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	Rating     int        `json:"rating"`
	Author     string     `json:"author"`
	Comment    string     `json:"comment"`
}
