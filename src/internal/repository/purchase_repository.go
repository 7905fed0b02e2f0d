package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

// PurchaseStore owns the multi-table atomic transactions of the platform:
// ticket purchase (debit, credit, ledger, inventory, tickets, notifications)
// and wallet top-up (ledger, credit, notification). Either everything in a
// call commits or nothing does.
type PurchaseStore interface {
	ExecutePurchase(ctx context.Context, plan entity.PurchasePlan) (*entity.PurchaseReceipt, error)
	ExecuteTopUp(ctx context.Context, plan entity.TopUpPlan) (*entity.TopUpReceipt, error)
}

type PurchaseRepository struct {
	DB mysql.DBInterface
}

func NewPurchaseRepository(db mysql.DBInterface) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// ExecutePurchase applies the whole purchase in one database transaction.
// Balance and inventory are re-guarded here with conditional updates, so two
// racing purchases can never drive either below zero: the loser's update
// matches no rows and the transaction rolls back with ErrTxConflict.
func (r *PurchaseRepository) ExecutePurchase(ctx context.Context, plan entity.PurchasePlan) (*entity.PurchaseReceipt, error) {
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
		UPDATE wallets
		SET balance = balance - ?, updated_at = NOW()
		WHERE id = ? AND balance >= ?`,
		plan.TotalAmount, plan.BuyerWalletID, plan.TotalAmount,
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
		UPDATE wallets
		SET balance = balance + ?, updated_at = NOW()
		WHERE id = ?`,
		plan.TotalAmount, plan.SellerWalletID,
	)
	if err != nil {
		return nil, err
	}

	debitID, err := insertTransaction(ctx, tx, plan.BuyerWalletID, -plan.TotalAmount,
		entity.TransactionTypePayment, plan.ReferenceID, plan.DebitDescription)
	if err != nil {
		return nil, err
	}

	creditID, err := insertTransaction(ctx, tx, plan.SellerWalletID, plan.TotalAmount,
		entity.TransactionTypeTransfer, plan.ReferenceID, plan.CreditDescription)
	if err != nil {
		return nil, err
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE events
		SET ticket_quantity = ticket_quantity - ?, updated_at = NOW()
		WHERE id = ? AND ticket_quantity >= ?`,
		plan.Quantity, plan.EventID, plan.Quantity,
	)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, ErrTxConflict
	}

	ticketIDs := make([]int64, 0, len(plan.TicketCodes))
	for _, code := range plan.TicketCodes {
		res, err = tx.ExecContext(ctx, `
			INSERT INTO tickets
				(code, event_id, user_id, purchase_date, price, status, wallet_type, is_sent, created_at)
			VALUES (?, ?, ?, NOW(), ?, ?, ?, 0, NOW())`,
			code, plan.EventID, plan.BuyerID, plan.UnitPrice,
			entity.TicketStatusActive, plan.WalletType,
		)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		ticketIDs = append(ticketIDs, id)
	}

	buyerNotifID, err := insertNotification(ctx, tx, plan.BuyerNotification)
	if err != nil {
		return nil, err
	}
	sellerNotifID, err := insertNotification(ctx, tx, plan.SellerNotification)
	if err != nil {
		return nil, err
	}

	receipt := &entity.PurchaseReceipt{}
	if err := tx.GetContext(ctx, &receipt.BuyerWallet,
		`SELECT id, user_id, wallet_type, balance, created_at, updated_at FROM wallets WHERE id = ?`,
		plan.BuyerWalletID); err != nil {
		return nil, err
	}
	if err := tx.GetContext(ctx, &receipt.Event, `
		SELECT id, name, type, date, time, location, description, poster_url,
		       ticket_price, ticket_quantity, user_id, created_at, updated_at
		FROM events WHERE id = ?`, plan.EventID); err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(`
		SELECT id, code, event_id, user_id, purchase_date, price, status,
		       wallet_type, is_sent, sent_at, created_at, updated_at
		FROM tickets WHERE id IN (?) ORDER BY id`, ticketIDs)
	if err != nil {
		return nil, err
	}
	if err := tx.SelectContext(ctx, &receipt.Tickets, tx.Rebind(query), args...); err != nil {
		return nil, err
	}

	if err := getTransaction(ctx, tx, debitID, &receipt.DebitTransaction); err != nil {
		return nil, err
	}
	if err := getTransaction(ctx, tx, creditID, &receipt.CreditTransaction); err != nil {
		return nil, err
	}
	if err := getNotification(ctx, tx, buyerNotifID, &receipt.BuyerNotification); err != nil {
		return nil, err
	}
	if err := getNotification(ctx, tx, sellerNotifID, &receipt.SellerNotification); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

// ExecuteTopUp appends the TOPUP ledger entry and increments the balance as
// one atomic unit.
func (r *PurchaseRepository) ExecuteTopUp(ctx context.Context, plan entity.TopUpPlan) (*entity.TopUpReceipt, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txnID, err := insertTransaction(ctx, tx, plan.WalletID, plan.Amount,
		entity.TransactionTypeTopUp, "", plan.Description)
	if err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE wallets
		SET balance = balance + ?, updated_at = NOW()
		WHERE id = ?`,
		plan.Amount, plan.WalletID,
	)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if rows == 0 {
		return nil, ErrTxConflict
	}

	notifID, err := insertNotification(ctx, tx, plan.Notification)
	if err != nil {
		return nil, err
	}

	receipt := &entity.TopUpReceipt{}
	if err := tx.GetContext(ctx, &receipt.Wallet,
		`SELECT id, user_id, wallet_type, balance, created_at, updated_at FROM wallets WHERE id = ?`,
		plan.WalletID); err != nil {
		return nil, err
	}
	if err := getTransaction(ctx, tx, txnID, &receipt.Transaction); err != nil {
		return nil, err
	}
	if err := getNotification(ctx, tx, notifID, &receipt.Notification); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

func insertTransaction(ctx context.Context, tx *sqlx.Tx, walletID, amount int64, txnType entity.TransactionType, referenceID, description string) (int64, error) {
	var ref any
	if referenceID != "" {
		ref = referenceID
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (wallet_id, amount, type, status, reference_id, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`,
		walletID, amount, txnType, entity.TransactionStatusSuccess, ref, description,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func insertNotification(ctx context.Context, tx *sqlx.Tx, n entity.Notification) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, title, message, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())`,
		n.UserID, n.Type, n.Title, n.Message,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func getTransaction(ctx context.Context, tx *sqlx.Tx, id int64, dest *entity.Transaction) error {
	return tx.GetContext(ctx, dest, `
		SELECT id, wallet_id, amount, type, status, reference_id, description, created_at
		FROM transactions WHERE id = ?`, id)
}

func getNotification(ctx context.Context, tx *sqlx.Tx, id int64, dest *entity.Notification) error {
	return tx.GetContext(ctx, dest, `
		SELECT id, user_id, type, title, message, is_read, created_at
		FROM notifications WHERE id = ?`, id)
}
