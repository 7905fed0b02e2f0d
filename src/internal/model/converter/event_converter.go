package converter

import (
	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
)

func EventToResponse(event *entity.Event) model.EventResponse {
	return model.EventResponse{
		ID:             event.ID,
		Name:           event.Name,
		Type:           event.Type,
		Date:           event.Date,
		Time:           event.Time,
		Location:       event.Location,
		Description:    event.Description,
		PosterURL:      event.PosterURL,
		TicketPrice:    event.TicketPrice,
		TicketQuantity: event.TicketQuantity,
		OrganizerID:    event.UserID,
		CreatedAt:      event.CreatedAt,
	}
}

func EventDetailToResponse(event *entity.EventDetail) model.EventResponse {
	response := EventToResponse(&event.Event)
	if event.OrganizerUsername.Valid {
		response.Organizer = event.OrganizerUsername.String
	}
	return response
}
