package entity

import (
	"database/sql"
	"time"
)

type TicketStatus string

const (
	TicketStatusActive TicketStatus = "active"
	TicketStatusSent   TicketStatus = "sent"
)

// Ticket rows are created only inside a successful purchase transaction and
// are immutable afterwards except for the active -> sent hand-off.
type Ticket struct {
	ID           int64        `db:"id" json:"id"`
	Code         string       `db:"code" json:"code"`
	EventID      int64        `db:"event_id" json:"event_id"`
	UserID       int64        `db:"user_id" json:"user_id"`
	PurchaseDate time.Time    `db:"purchase_date" json:"purchase_date"`
	Price        int64        `db:"price" json:"price"`
	Status       TicketStatus `db:"status" json:"status"`
	WalletType   WalletType   `db:"wallet_type" json:"wallet_type"`
	IsSent       bool         `db:"is_sent" json:"is_sent"`
	SentAt       *time.Time   `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time   `db:"updated_at" json:"updated_at,omitempty"`
}

type TicketDetail struct {
	Ticket
	EventName    string         `db:"event_name"`
	EventDate    time.Time      `db:"event_date"`
	EventOwnerID int64          `db:"event_owner_id"`
	BuyerName    sql.NullString `db:"buyer_name"`
}
