package model

import "time"

type ListNotificationsRequest struct {
	UserID int64 `json:"-" validate:"required"`
}

type MarkNotificationReadRequest struct {
	UserID         int64 `json:"-" validate:"required"`
	NotificationID int64 `json:"notification_id" validate:"required"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
