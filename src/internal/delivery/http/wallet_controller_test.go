package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletStoreStub struct {
	wallets []entity.Wallet
}

func (s *walletStoreStub) FindByUser(ctx context.Context, userID int64) ([]entity.Wallet, error) {
	return s.wallets, nil
}

func (s *walletStoreStub) FindByUserAndType(ctx context.Context, userID int64, walletType entity.WalletType) (*entity.Wallet, error) {
	for i := range s.wallets {
		if s.wallets[i].UserID == userID && s.wallets[i].WalletType == walletType {
			return &s.wallets[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *walletStoreStub) EnsureWallets(ctx context.Context, userID int64, types []entity.WalletType) ([]entity.Wallet, error) {
	return s.wallets, nil
}

type transactionStoreStub struct {
	transactions []entity.Transaction
}

func (s *transactionStoreStub) FindByWallet(ctx context.Context, walletID int64, limit int) ([]entity.Transaction, error) {
	return s.transactions, nil
}

type purchaseStoreStub struct{}

func (s *purchaseStoreStub) ExecutePurchase(ctx context.Context, plan entity.PurchasePlan) (*entity.PurchaseReceipt, error) {
	return &entity.PurchaseReceipt{}, nil
}

func (s *purchaseStoreStub) ExecuteTopUp(ctx context.Context, plan entity.TopUpPlan) (*entity.TopUpReceipt, error) {
	return &entity.TopUpReceipt{}, nil
}

func newWalletApp(t *testing.T) *fiber.App {
	t.Helper()

	wallets := &walletStoreStub{wallets: []entity.Wallet{
		{ID: 10, UserID: 5, WalletType: entity.WalletTypeRendiPay, Balance: 50000},
	}}
	transactions := &transactionStoreStub{transactions: []entity.Transaction{
		{ID: 1, WalletID: 10, Amount: 50000, Type: entity.TransactionTypeTopUp, Status: entity.TransactionStatusSuccess},
	}}

	useCase := usecase.NewWalletUseCase(
		log.Log{}, validator.New(), wallets, transactions, &purchaseStoreStub{}, viper.New(), nil, nil,
	)
	controller := NewWalletController(useCase, log.Log{})

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("auth-user", token.Metadata{UserID: 5, Username: "dinda"})
		return ctx.Next()
	})
	app.Get("/wallets/v1/:type/transactions", controller.GetTransactions)
	return app
}

func TestGetTransactionsDecodesWalletTypeParam(t *testing.T) {
	app := newWalletApp(t)

	req := httptest.NewRequest("GET", "/wallets/v1/Rendi%20Pay/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    model.WalletResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Rendi Pay", envelope.Data.Type)
	assert.Equal(t, int64(50000), envelope.Data.Balance)
	require.Len(t, envelope.Data.Transactions, 1)
}

func TestGetTransactionsRejectsUnknownWalletType(t *testing.T) {
	app := newWalletApp(t)

	req := httptest.NewRequest("GET", "/wallets/v1/Gold%20Pay/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
