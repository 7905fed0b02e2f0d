package usecase

import (
	"context"
	"testing"
	"time"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventFixture() (*stubEventStore, *EventUseCase) {
	events := &stubEventStore{events: map[int64]*entity.EventDetail{
		7: {Event: entity.Event{
			ID:             7,
			Name:           "Java Jazz",
			Type:           "Music",
			Date:           time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Time:           "19:00",
			Location:       "Jakarta",
			TicketPrice:    20000,
			TicketQuantity: 5,
			UserID:         2,
		}},
	}}
	uc := NewEventUseCase(log.Log{}, validator.New(), events, nil)
	return events, uc
}

func TestCreateEventParsesDate(t *testing.T) {
	_, uc := newEventFixture()

	result := uc.CreateEvent(context.Background(), &model.CreateEventRequest{
		UserID:         2,
		Name:           "Rock Night",
		Type:           "Music",
		Date:           "2026-12-24",
		Time:           "20:00",
		Location:       "Bandung",
		Description:    "Year end show",
		PosterURL:      "https://cdn.example.com/rock.jpg",
		TicketPrice:    30000,
		TicketQuantity: 100,
	})
	require.NoError(t, result.Error)

	response := result.Data.(model.EventResponse)
	assert.Equal(t, 2026, response.Date.Year())
	assert.Equal(t, time.December, response.Date.Month())
}

func TestCreateEventRejectsBadDate(t *testing.T) {
	_, uc := newEventFixture()

	result := uc.CreateEvent(context.Background(), &model.CreateEventRequest{
		UserID:         2,
		Name:           "Rock Night",
		Type:           "Music",
		Date:           "24-12-2026",
		Time:           "20:00",
		Location:       "Bandung",
		Description:    "Year end show",
		PosterURL:      "https://cdn.example.com/rock.jpg",
		TicketPrice:    30000,
		TicketQuantity: 100,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, errObj.Code)
}

func TestUpdateEventOnlyByOrganizer(t *testing.T) {
	_, uc := newEventFixture()

	result := uc.UpdateEvent(context.Background(), &model.UpdateEventRequest{
		EventID:        7,
		UserID:         1, // not the organizer
		Name:           "Java Jazz",
		Type:           "Music",
		Date:           "2026-10-01",
		Time:           "19:00",
		Location:       "Jakarta",
		Description:    "Jazz festival",
		PosterURL:      "https://cdn.example.com/jazz.jpg",
		TicketPrice:    20000,
		TicketQuantity: 10,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "FORBIDDEN", errObj.Kind)
}

func TestUpdateEventRestocksInventory(t *testing.T) {
	_, uc := newEventFixture()

	result := uc.UpdateEvent(context.Background(), &model.UpdateEventRequest{
		EventID:        7,
		UserID:         2,
		Name:           "Java Jazz",
		Type:           "Music",
		Date:           "2026-10-01",
		Time:           "19:00",
		Location:       "Jakarta",
		Description:    "Jazz festival",
		PosterURL:      "https://cdn.example.com/jazz.jpg",
		TicketPrice:    20000,
		TicketQuantity: 50,
	})
	require.NoError(t, result.Error)

	response := result.Data.(model.EventResponse)
	assert.Equal(t, 50, response.TicketQuantity)
}

func TestGetEventUnknownID(t *testing.T) {
	_, uc := newEventFixture()

	result := uc.GetEvent(context.Background(), 99)
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "NOT_FOUND", errObj.Kind)
}
