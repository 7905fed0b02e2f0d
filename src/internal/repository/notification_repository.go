package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type NotificationStore interface {
	FindByUser(ctx context.Context, userID int64) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*entity.Notification, error)
}

type NotificationRepository struct {
	DB mysql.DBInterface
}

func NewNotificationRepository(db mysql.DBInterface) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID int64) ([]entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	query := `
		SELECT id, user_id, type, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC`
	if err := db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead only touches notifications owned by userID; a miss surfaces as
// sql.ErrNoRows from the read-back.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) (*entity.Notification, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	var notification entity.Notification
	query := `
		SELECT id, user_id, type, title, message, is_read, created_at
		FROM notifications WHERE id = ? AND user_id = ?`
	if err := db.GetContext(ctx, &notification, query, id, userID); err != nil {
		return nil, err
	}
	return &notification, nil
}
