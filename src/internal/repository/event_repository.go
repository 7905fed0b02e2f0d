package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type EventStore interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	FindAll(ctx context.Context) ([]entity.EventDetail, error)
	FindByID(ctx context.Context, id int64) (*entity.EventDetail, error)
	Update(ctx context.Context, event *entity.Event) error
}

type EventRepository struct {
	DB mysql.DBInterface
}

func NewEventRepository(db mysql.DBInterface) *EventRepository {
	return &EventRepository{DB: db}
}

const selectEventDetail = `
	SELECT
		e.id, e.name, e.type, e.date, e.time, e.location, e.description,
		e.poster_url, e.ticket_price, e.ticket_quantity, e.user_id,
		e.created_at, e.updated_at,
		u.username AS organizer_username
	FROM events e
	JOIN users u ON u.id = e.user_id
`

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO events
			(name, type, date, time, location, description, poster_url,
			 ticket_price, ticket_quantity, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		event.Name, event.Type, event.Date, event.Time, event.Location,
		event.Description, event.PosterURL, event.TicketPrice,
		event.TicketQuantity, event.UserID,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	var created entity.Event
	query := `
		SELECT id, name, type, date, time, location, description, poster_url,
		       ticket_price, ticket_quantity, user_id, created_at, updated_at
		FROM events WHERE id = ?`
	if err := db.GetContext(ctx, &created, query, id); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entity.EventDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var events []entity.EventDetail
	query := selectEventDetail + ` ORDER BY e.date ASC`
	if err := db.SelectContext(ctx, &events, query); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entity.EventDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var event entity.EventDetail
	query := selectEventDetail + ` WHERE e.id = ?`
	if err := db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		UPDATE events
		SET name = ?, type = ?, date = ?, time = ?, location = ?,
		    description = ?, poster_url = ?, ticket_price = ?,
		    ticket_quantity = ?, updated_at = NOW()
		WHERE id = ?`,
		event.Name, event.Type, event.Date, event.Time, event.Location,
		event.Description, event.PosterURL, event.TicketPrice,
		event.TicketQuantity, event.ID,
	)
	return err
}
