package entity

import "time"

// WalletType is the closed set of payment brands on the platform. A wallet of
// one type can only settle against a wallet of the same type.
type WalletType string

const (
	WalletTypeRendiPay WalletType = "Rendi Pay"
	WalletTypeDindaPay WalletType = "Dinda Pay"
	WalletTypeErwinPay WalletType = "Erwin Pay"
)

func AllWalletTypes() []WalletType {
	return []WalletType{WalletTypeRendiPay, WalletTypeDindaPay, WalletTypeErwinPay}
}

func ParseWalletType(s string) (WalletType, bool) {
	switch WalletType(s) {
	case WalletTypeRendiPay:
		return WalletTypeRendiPay, true
	case WalletTypeDindaPay:
		return WalletTypeDindaPay, true
	case WalletTypeErwinPay:
		return WalletTypeErwinPay, true
	}
	return "", false
}

func (t WalletType) Valid() bool {
	_, ok := ParseWalletType(string(t))
	return ok
}

// Wallet balance is kept in minor currency units and must never be observed
// negative; all debits go through guarded conditional updates.
type Wallet struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id"`
	WalletType WalletType `db:"wallet_type" json:"wallet_type"`
	Balance    int64      `db:"balance" json:"balance"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
