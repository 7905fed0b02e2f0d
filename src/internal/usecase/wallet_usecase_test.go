package usecase

import (
	"context"
	"testing"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletFixture() (*stubWalletStore, *stubTransactionStore, *stubPurchaseStore, *WalletUseCase) {
	wallets := &stubWalletStore{}
	transactions := &stubTransactionStore{transactions: map[int64][]entity.Transaction{}}
	purchases := &stubPurchaseStore{balanceAfter: 25000}

	cfg := viper.New()
	cfg.Set("wallet.topup.minimum", 10000)

	uc := NewWalletUseCase(log.Log{}, validator.New(), wallets, transactions, purchases, cfg, nil, nil)
	return wallets, transactions, purchases, uc
}

func TestGetBalancesProvisionsAllWalletTypes(t *testing.T) {
	wallets, _, _, uc := newWalletFixture()

	result := uc.GetBalances(context.Background(), &model.GetBalancesRequest{UserID: 5})
	require.NoError(t, result.Error)

	responses, ok := result.Data.([]model.WalletResponse)
	require.True(t, ok)
	assert.Len(t, responses, 3)
	assert.Equal(t, entity.AllWalletTypes(), wallets.lastEnsured)
	for _, r := range responses {
		assert.Equal(t, int64(0), r.Balance)
	}
}

func TestGetBalancesIsIdempotent(t *testing.T) {
	wallets, _, _, uc := newWalletFixture()

	for i := 0; i < 3; i++ {
		result := uc.GetBalances(context.Background(), &model.GetBalancesRequest{UserID: 5})
		require.NoError(t, result.Error)
	}

	owned, err := wallets.FindByUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, owned, 3, "repeat calls must not create duplicate wallets")
}

func TestTopUpBelowMinimum(t *testing.T) {
	_, _, purchases, uc := newWalletFixture()

	result := uc.TopUp(context.Background(), &model.TopUpRequest{
		UserID:     5,
		WalletType: "Rendi Pay",
		Amount:     9999,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "TOPUP_BELOW_MINIMUM", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestTopUpInvalidWalletType(t *testing.T) {
	_, _, purchases, uc := newWalletFixture()

	result := uc.TopUp(context.Background(), &model.TopUpRequest{
		UserID:     5,
		WalletType: "Gold Pay",
		Amount:     15000,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "INVALID_WALLET_TYPE", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestTopUpCreditsWallet(t *testing.T) {
	wallets, _, purchases, uc := newWalletFixture()

	result := uc.TopUp(context.Background(), &model.TopUpRequest{
		UserID:     5,
		WalletType: "Dinda Pay",
		Amount:     25000,
	})
	require.NoError(t, result.Error)

	require.NotNil(t, purchases.lastTopUp)
	assert.Equal(t, int64(25000), purchases.lastTopUp.Amount)
	assert.Equal(t, entity.NotificationTopUpSuccess, purchases.lastTopUp.Notification.Type)
	assert.Equal(t, 1, wallets.ensureCalls, "wallets are provisioned before the credit")

	response, ok := result.Data.(model.WalletResponse)
	require.True(t, ok)
	assert.Equal(t, int64(25000), response.Balance)
}

func TestTopUpConflict(t *testing.T) {
	_, _, purchases, uc := newWalletFixture()
	purchases.topUpErr = repository.ErrTxConflict

	result := uc.TopUp(context.Background(), &model.TopUpRequest{
		UserID:     5,
		WalletType: "Rendi Pay",
		Amount:     15000,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "TRANSACTION_FAILED", errObj.Kind)
}

func TestGetTransactionsUnknownWallet(t *testing.T) {
	_, _, _, uc := newWalletFixture()

	result := uc.GetTransactions(context.Background(), &model.GetWalletTransactionsRequest{
		UserID:     5,
		WalletType: "Erwin Pay",
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "NOT_FOUND", errObj.Kind)
}
