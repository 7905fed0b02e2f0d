package http

import (
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Log     log.Log
	UseCase *usecase.NotificationUseCase
}

func NewNotificationController(useCase *usecase.NotificationUseCase, logger log.Log) *NotificationController {
	return &NotificationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *NotificationController) ListNotifications(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListNotificationsRequest{UserID: auth.UserID}
	result := c.UseCase.ListNotifications(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "ListNotifications", fiber.StatusOK, ctx)
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.MarkNotificationReadRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("NotificationController.MarkRead", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.MarkRead(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "MarkRead", fiber.StatusOK, ctx)
}
