package converter

import (
	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
)

func NotificationToResponse(notification *entity.Notification) model.NotificationResponse {
	return model.NotificationResponse{
		ID:        notification.ID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}
