package model

import "time"

type TopUpRequest struct {
	UserID     int64  `json:"-" validate:"required"`
	WalletType string `json:"wallet_type" validate:"required"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
}

type GetBalancesRequest struct {
	UserID int64 `json:"-" validate:"required"`
}

type GetWalletTransactionsRequest struct {
	UserID     int64  `json:"-" validate:"required"`
	WalletType string `json:"-" validate:"required"`
}

type WalletResponse struct {
	ID           int64                 `json:"id"`
	Type         string                `json:"type"`
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
}

type TransactionResponse struct {
	ID          int64     `json:"id"`
	WalletID    int64     `json:"wallet_id"`
	Amount      int64     `json:"amount"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
