package entity

// PurchasePlan is the fully validated input of the atomic purchase
// transaction. All ids have already been resolved and all preconditions
// checked; the store still re-guards balance and inventory inside the
// transaction.
type PurchasePlan struct {
	BuyerID        int64
	BuyerWalletID  int64
	SellerID       int64
	SellerWalletID int64
	EventID        int64
	WalletType     WalletType
	Quantity       int
	UnitPrice      int64
	TotalAmount    int64
	TicketCodes    []string

	DebitDescription  string
	CreditDescription string
	ReferenceID       string

	BuyerNotification  Notification
	SellerNotification Notification
}

// PurchaseReceipt is everything the purchase transaction created or updated,
// read back inside the same transaction before commit.
type PurchaseReceipt struct {
	BuyerWallet        Wallet
	Event              Event
	Tickets            []Ticket
	DebitTransaction   Transaction
	CreditTransaction  Transaction
	BuyerNotification  Notification
	SellerNotification Notification
}

type TopUpPlan struct {
	WalletID     int64
	Amount       int64
	Description  string
	Notification Notification
}

type TopUpReceipt struct {
	Wallet       Wallet
	Transaction  Transaction
	Notification Notification
}
