package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type WalletStore interface {
	FindByUser(ctx context.Context, userID int64) ([]entity.Wallet, error)
	FindByUserAndType(ctx context.Context, userID int64, walletType entity.WalletType) (*entity.Wallet, error)
	EnsureWallets(ctx context.Context, userID int64, types []entity.WalletType) ([]entity.Wallet, error)
}

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{DB: db}
}

const selectWallet = `
	SELECT id, user_id, wallet_type, balance, created_at, updated_at
	FROM wallets
`

func (r *WalletRepository) FindByUser(ctx context.Context, userID int64) ([]entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallets []entity.Wallet
	query := selectWallet + ` WHERE user_id = ? ORDER BY wallet_type`
	if err := db.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (r *WalletRepository) FindByUserAndType(ctx context.Context, userID int64, walletType entity.WalletType) (*entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallet entity.Wallet
	query := selectWallet + ` WHERE user_id = ? AND wallet_type = ?`
	if err := db.GetContext(ctx, &wallet, query, userID, walletType); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// EnsureWallets creates any missing wallet types at zero balance. The unique
// key on (user_id, wallet_type) makes re-invocation a no-op, so concurrent
// callers can never produce duplicates.
func (r *WalletRepository) EnsureWallets(ctx context.Context, userID int64, types []entity.WalletType) ([]entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	for _, walletType := range types {
		_, err = db.ExecContext(ctx, `
			INSERT IGNORE INTO wallets (user_id, wallet_type, balance, created_at)
			VALUES (?, ?, 0, NOW())`,
			userID, walletType,
		)
		if err != nil {
			return nil, err
		}
	}

	return r.FindByUser(ctx, userID)
}
