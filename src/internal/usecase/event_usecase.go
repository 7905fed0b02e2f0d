package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/model/converter"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

type EventUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	EventRepository repository.EventStore
	Redis           redis.UniversalClient
}

func NewEventUseCase(
	logger log.Log,
	validate *validator.Validate,
	eventRepository repository.EventStore,
	redisClient redis.UniversalClient,
) *EventUseCase {
	return &EventUseCase{
		Log:             logger,
		Validate:        validate,
		EventRepository: eventRepository,
		Redis:           redisClient,
	}
}

func (c *EventUseCase) CreateEvent(ctx context.Context, request *model.CreateEventRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "CreateEvent", utils.ConvertString(request))
		return result
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "date must be in YYYY-MM-DD format"
		result.Error = errObj
		return result
	}

	event := &entity.Event{
		Name:           request.Name,
		Type:           request.Type,
		Date:           date,
		Time:           request.Time,
		Location:       request.Location,
		Description:    request.Description,
		PosterURL:      request.PosterURL,
		TicketPrice:    request.TicketPrice,
		TicketQuantity: request.TicketQuantity,
		UserID:         request.UserID,
	}

	created, err := c.EventRepository.Create(ctx, event)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create event"
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "CreateEvent", utils.ConvertString(err))
		return result
	}

	c.Log.Info("event-usecase", "event created", "CreateEvent", created.Name)
	result.Data = converter.EventToResponse(created)
	return result
}

func (c *EventUseCase) ListEvents(ctx context.Context) utils.Result {
	var result utils.Result

	events, err := c.EventRepository.FindAll(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load events"
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "ListEvents", utils.ConvertString(err))
		return result
	}

	responses := make([]model.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, converter.EventDetailToResponse(&events[i]))
	}
	result.Data = responses
	return result
}

func (c *EventUseCase) GetEvent(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	cacheKey := fmt.Sprintf("EVENT:DETAIL:%d", id)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var response model.EventResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				result.Data = response
				return result
			}
		}
	}

	event, err := c.EventRepository.FindByID(ctx, id)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("event with id %d not found", id)
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "GetEvent", utils.ConvertString(err))
		return result
	}

	response := converter.EventDetailToResponse(event)
	if c.Redis != nil {
		if data, err := json.Marshal(response); err == nil {
			if err := c.Redis.Set(ctx, cacheKey, data, 5*time.Minute).Err(); err != nil {
				c.Log.Error("event-usecase", fmt.Sprintf("cache write failed: %v", err), "GetEvent", "")
			}
		}
	}

	result.Data = response
	return result
}

// UpdateEvent lets the organizer edit their event, including raising the
// remaining ticket quantity.
func (c *EventUseCase) UpdateEvent(ctx context.Context, request *model.UpdateEventRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "UpdateEvent", utils.ConvertString(request))
		return result
	}

	existing, err := c.EventRepository.FindByID(ctx, request.EventID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("event with id %d not found", request.EventID)
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "UpdateEvent", utils.ConvertString(err))
		return result
	}

	if existing.UserID != request.UserID {
		errObj := httpError.NewForbidden()
		errObj.Message = "only the organizer can edit this event"
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "UpdateEvent", "")
		return result
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "date must be in YYYY-MM-DD format"
		result.Error = errObj
		return result
	}

	event := existing.Event
	event.Name = request.Name
	event.Type = request.Type
	event.Date = date
	event.Time = request.Time
	event.Location = request.Location
	event.Description = request.Description
	event.PosterURL = request.PosterURL
	event.TicketPrice = request.TicketPrice
	event.TicketQuantity = request.TicketQuantity

	if err := c.EventRepository.Update(ctx, &event); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update event"
		result.Error = errObj
		c.Log.Error("event-usecase", errObj.Message, "UpdateEvent", utils.ConvertString(err))
		return result
	}

	if c.Redis != nil {
		cacheKey := fmt.Sprintf("EVENT:DETAIL:%d", event.ID)
		if err := c.Redis.Del(ctx, cacheKey).Err(); err != nil {
			c.Log.Error("event-usecase", fmt.Sprintf("cache invalidation failed: %v", err), "UpdateEvent", "")
		}
	}

	result.Data = converter.EventToResponse(&event)
	return result
}
