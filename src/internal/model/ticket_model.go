package model

import "time"

type PurchaseTicketRequest struct {
	UserID     int64  `json:"-" validate:"required"`
	Username   string `json:"-"`
	EventID    int64  `json:"event_id" validate:"required"`
	WalletType string `json:"wallet_type" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

type SendTicketRequest struct {
	UserID   int64 `json:"-" validate:"required"`
	TicketID int64 `json:"-" validate:"required"`
}

type ListTicketsRequest struct {
	UserID int64 `json:"-" validate:"required"`
}

type TradeHistoryRequest struct {
	UserID int64  `json:"-" validate:"required"`
	Side   string `json:"-" validate:"required,oneof=buy sell"`
}

type TicketResponse struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	EventID      int64      `json:"event_id"`
	EventName    string     `json:"event_name,omitempty"`
	EventDate    *time.Time `json:"event_date,omitempty"`
	BuyerName    string     `json:"buyer_name,omitempty"`
	PurchaseDate time.Time  `json:"purchase_date"`
	Price        int64      `json:"price"`
	Status       string     `json:"status"`
	WalletType   string     `json:"wallet_type"`
	IsSent       bool       `json:"is_sent"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

type PurchaseNotifications struct {
	Buyer  NotificationResponse `json:"buyer"`
	Seller NotificationResponse `json:"seller"`
}

type PurchaseResponse struct {
	Wallet        WalletResponse        `json:"wallet"`
	Tickets       []TicketResponse      `json:"tickets"`
	Event         EventResponse         `json:"event"`
	Transaction   TransactionResponse   `json:"transaction"`
	Notifications PurchaseNotifications `json:"notifications"`
}
