package converter

import (
	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
)

func WalletToResponse(wallet *entity.Wallet, transactions []entity.Transaction) model.WalletResponse {
	response := model.WalletResponse{
		ID:      wallet.ID,
		Type:    string(wallet.WalletType),
		Balance: wallet.Balance,
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, TransactionToResponse(&transactions[i]))
	}
	return response
}

func TransactionToResponse(txn *entity.Transaction) model.TransactionResponse {
	response := model.TransactionResponse{
		ID:          txn.ID,
		WalletID:    txn.WalletID,
		Amount:      txn.Amount,
		Type:        string(txn.Type),
		Status:      txn.Status,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
	if txn.ReferenceID.Valid {
		response.ReferenceID = txn.ReferenceID.String
	}
	return response
}
