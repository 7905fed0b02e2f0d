package entity

import (
	"database/sql"
	"time"
)

type Event struct {
	ID             int64      `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Type           string     `db:"type" json:"type"`
	Date           time.Time  `db:"date" json:"date"`
	Time           string     `db:"time" json:"time"`
	Location       string     `db:"location" json:"location"`
	Description    string     `db:"description" json:"description"`
	PosterURL      string     `db:"poster_url" json:"poster_url"`
	TicketPrice    int64      `db:"ticket_price" json:"ticket_price"`
	TicketQuantity int        `db:"ticket_quantity" json:"ticket_quantity"`
	UserID         int64      `db:"user_id" json:"user_id"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// EventDetail joins the event row with its organizer's username for
// purchase descriptions and listings.
type EventDetail struct {
	Event
	OrganizerUsername sql.NullString `db:"organizer_username"`
}
