package model

import "time"

type CreateEventRequest struct {
	UserID         int64  `json:"-" validate:"required"`
	Name           string `json:"name" validate:"required,max=150"`
	Type           string `json:"type" validate:"required,max=50"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required,max=20"`
	Location       string `json:"location" validate:"required,max=255"`
	Description    string `json:"description" validate:"required"`
	PosterURL      string `json:"poster_url" validate:"required"`
	TicketPrice    int64  `json:"ticket_price" validate:"required,gt=0"`
	TicketQuantity int    `json:"ticket_quantity" validate:"required,gt=0"`
}

type UpdateEventRequest struct {
	EventID        int64  `json:"-" validate:"required"`
	UserID         int64  `json:"-" validate:"required"`
	Name           string `json:"name" validate:"required,max=150"`
	Type           string `json:"type" validate:"required,max=50"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required,max=20"`
	Location       string `json:"location" validate:"required,max=255"`
	Description    string `json:"description" validate:"required"`
	PosterURL      string `json:"poster_url" validate:"required"`
	TicketPrice    int64  `json:"ticket_price" validate:"required,gt=0"`
	TicketQuantity int    `json:"ticket_quantity" validate:"required,gte=0"`
}

type EventResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	PosterURL      string    `json:"poster_url"`
	TicketPrice    int64     `json:"ticket_price"`
	TicketQuantity int       `json:"ticket_quantity"`
	OrganizerID    int64     `json:"organizer_id"`
	Organizer      string    `json:"organizer,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
