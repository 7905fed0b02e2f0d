package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type TicketStore interface {
	FindByUser(ctx context.Context, userID int64) ([]entity.TicketDetail, error)
	FindDetailByID(ctx context.Context, id int64) (*entity.TicketDetail, error)
	FindTrade(ctx context.Context, userID int64, side string) ([]entity.TicketDetail, error)
	MarkSent(ctx context.Context, ticketID int64, notification entity.Notification) (*entity.Ticket, error)
}

type TicketRepository struct {
	DB mysql.DBInterface
}

func NewTicketRepository(db mysql.DBInterface) *TicketRepository {
	return &TicketRepository{DB: db}
}

const selectTicketDetail = `
	SELECT
		t.id, t.code, t.event_id, t.user_id, t.purchase_date, t.price,
		t.status, t.wallet_type, t.is_sent, t.sent_at, t.created_at, t.updated_at,
		e.name AS event_name,
		e.date AS event_date,
		e.user_id AS event_owner_id,
		u.username AS buyer_name
	FROM tickets t
	JOIN events e ON e.id = t.event_id
	JOIN users u ON u.id = t.user_id
`

func (r *TicketRepository) FindByUser(ctx context.Context, userID int64) ([]entity.TicketDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tickets []entity.TicketDetail
	query := selectTicketDetail + ` WHERE t.user_id = ? ORDER BY t.purchase_date DESC`
	if err := db.SelectContext(ctx, &tickets, query, userID); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) FindDetailByID(ctx context.Context, id int64) (*entity.TicketDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var ticket entity.TicketDetail
	query := selectTicketDetail + ` WHERE t.id = ?`
	if err := db.GetContext(ctx, &ticket, query, id); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindTrade lists tickets the user bought (side "buy") or tickets sold on the
// user's events (side "sell").
func (r *TicketRepository) FindTrade(ctx context.Context, userID int64, side string) ([]entity.TicketDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	where := ` WHERE t.user_id = ?`
	if side == "sell" {
		where = ` WHERE e.user_id = ?`
	}

	var tickets []entity.TicketDetail
	query := selectTicketDetail + where + ` ORDER BY t.purchase_date DESC`
	if err := db.SelectContext(ctx, &tickets, query, userID); err != nil {
		return nil, err
	}
	return tickets, nil
}

// MarkSent flips the ticket to sent and writes the buyer notification in one
// transaction. The is_sent guard keeps a double hand-off from creating a
// second notification.
func (r *TicketRepository) MarkSent(ctx context.Context, ticketID int64, notification entity.Notification) (*entity.Ticket, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE tickets
		SET status = ?, is_sent = 1, sent_at = NOW(), updated_at = NOW()
		WHERE id = ? AND is_sent = 0`,
		entity.TicketStatusSent, ticketID,
	)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, ErrTxConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())`,
		notification.UserID, notification.Type, notification.Title, notification.Message,
	)
	if err != nil {
		return nil, err
	}

	var ticket entity.Ticket
	query := `
		SELECT id, code, event_id, user_id, purchase_date, price, status,
		       wallet_type, is_sent, sent_at, created_at, updated_at
		FROM tickets WHERE id = ?`
	if err := tx.GetContext(ctx, &ticket, query, ticketID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &ticket, nil
}
