package usecase

import (
	"context"
	"fmt"

	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/model/converter"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type NotificationUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	NotificationRepository repository.NotificationStore
}

func NewNotificationUseCase(
	logger log.Log,
	validate *validator.Validate,
	notificationRepository repository.NotificationStore,
) *NotificationUseCase {
	return &NotificationUseCase{
		Log:                    logger,
		Validate:               validate,
		NotificationRepository: notificationRepository,
	}
}

func (c *NotificationUseCase) ListNotifications(ctx context.Context, request *model.ListNotificationsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	notifications, err := c.NotificationRepository.FindByUser(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load notifications"
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "ListNotifications", utils.ConvertString(err))
		return result
	}

	responses := make([]model.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, converter.NotificationToResponse(&notifications[i]))
	}
	result.Data = responses
	return result
}

func (c *NotificationUseCase) MarkRead(ctx context.Context, request *model.MarkNotificationReadRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	notification, err := c.NotificationRepository.MarkRead(ctx, request.NotificationID, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("notification with id %d not found", request.NotificationID)
		result.Error = errObj
		c.Log.Error("notification-usecase", errObj.Message, "MarkRead", utils.ConvertString(err))
		return result
	}

	result.Data = converter.NotificationToResponse(notification)
	return result
}
