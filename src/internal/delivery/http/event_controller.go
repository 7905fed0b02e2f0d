package http

import (
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type EventController struct {
	Log     log.Log
	UseCase *usecase.EventUseCase
}

func NewEventController(useCase *usecase.EventUseCase, logger log.Log) *EventController {
	return &EventController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *EventController) CreateEvent(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateEventRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("EventController.CreateEvent", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.CreateEvent(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "CreateEvent", fiber.StatusCreated, ctx)
}

func (c *EventController) ListEvents(ctx *fiber.Ctx) error {
	result := c.UseCase.ListEvents(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "ListEvents", fiber.StatusOK, ctx)
}

func (c *EventController) GetEvent(ctx *fiber.Ctx) error {
	eventID, err := ctx.ParamsInt("id")
	if err != nil || eventID <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid event id"
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.GetEvent(ctx.Context(), int64(eventID))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetEvent", fiber.StatusOK, ctx)
}

func (c *EventController) UpdateEvent(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	eventID, err := ctx.ParamsInt("id")
	if err != nil || eventID <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid event id"
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.UpdateEventRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("EventController.UpdateEvent", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.EventID = int64(eventID)
	request.UserID = auth.UserID

	result := c.UseCase.UpdateEvent(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "UpdateEvent", fiber.StatusOK, ctx)
}
