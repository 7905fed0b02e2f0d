package entity

import (
	"database/sql"
	"time"
)

type TransactionType string

const (
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypeTopUp    TransactionType = "TOPUP"
)

const TransactionStatusSuccess = "SUCCESS"

// Transaction is an append-only ledger entry; amount is negative for debits
// and positive for credits.
type Transaction struct {
	ID          int64           `db:"id" json:"id"`
	WalletID    int64           `db:"wallet_id" json:"wallet_id"`
	Amount      int64           `db:"amount" json:"amount"`
	Type        TransactionType `db:"type" json:"type"`
	Status      string          `db:"status" json:"status"`
	ReferenceID sql.NullString  `db:"reference_id" json:"reference_id,omitempty"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
