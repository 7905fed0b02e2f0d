package model

import "time"

// Event is anything the messaging gateway can publish.
type Event interface {
	GetId() string
}

type TicketPurchasedEvent struct {
	ReferenceID string    `json:"reference_id"`
	EventID     int64     `json:"event_id"`
	BuyerID     int64     `json:"buyer_id"`
	SellerID    int64     `json:"seller_id"`
	WalletType  string    `json:"wallet_type"`
	Quantity    int       `json:"quantity"`
	TotalAmount int64     `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e *TicketPurchasedEvent) GetId() string {
	return e.ReferenceID
}

type WalletTopUpEvent struct {
	ReferenceID string    `json:"reference_id"`
	UserID      int64     `json:"user_id"`
	WalletID    int64     `json:"wallet_id"`
	WalletType  string    `json:"wallet_type"`
	Amount      int64     `json:"amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e *WalletTopUpEvent) GetId() string {
	return e.ReferenceID
}
