package repository

import (
	"context"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/pkg/databases/mysql"
)

type TransactionStore interface {
	FindByWallet(ctx context.Context, walletID int64, limit int) ([]entity.Transaction, error)
}

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) FindByWallet(ctx context.Context, walletID int64, limit int) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var transactions []entity.Transaction
	query := `
		SELECT id, wallet_id, amount, type, status, reference_id, description, created_at
		FROM transactions
		WHERE wallet_id = ?
		ORDER BY created_at DESC
		LIMIT ?`
	if err := db.SelectContext(ctx, &transactions, query, walletID, limit); err != nil {
		return nil, err
	}
	return transactions, nil
}
