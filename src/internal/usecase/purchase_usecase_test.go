package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

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

func newPurchaseFixture() (*stubUserStore, *stubWalletStore, *stubEventStore, *stubPurchaseStore, *PurchaseUseCase) {
	users := &stubUserStore{users: map[int64]*entity.User{
		1: {ID: 1, Username: "buyer", Email: "buyer@mail.com"},
		2: {ID: 2, Username: "seller", Email: "seller@mail.com"},
	}}
	wallets := &stubWalletStore{wallets: []entity.Wallet{
		{ID: 10, UserID: 1, WalletType: entity.WalletTypeRendiPay, Balance: 50000},
		{ID: 20, UserID: 2, WalletType: entity.WalletTypeRendiPay, Balance: 0},
	}}
	events := &stubEventStore{events: map[int64]*entity.EventDetail{
		7: {Event: entity.Event{
			ID:             7,
			Name:           "Java Jazz",
			Date:           time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			TicketPrice:    20000,
			TicketQuantity: 5,
			UserID:         2,
		}},
	}}
	purchases := &stubPurchaseStore{balanceAfter: 10000, stockAfter: 3}

	uc := NewPurchaseUseCase(log.Log{}, validator.New(), users, wallets, events, purchases, viper.New(), nil, nil)
	return users, wallets, events, purchases, uc
}

func TestPurchaseDebitsBuyerAndCreditsSeller(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   2,
	})
	require.NoError(t, result.Error)

	require.NotNil(t, purchases.lastPlan)
	plan := purchases.lastPlan
	assert.Equal(t, int64(40000), plan.TotalAmount)
	assert.Equal(t, int64(10), plan.BuyerWalletID)
	assert.Equal(t, int64(20), plan.SellerWalletID)
	assert.Len(t, plan.TicketCodes, 2)
	for _, code := range plan.TicketCodes {
		assert.True(t, strings.HasPrefix(code, "TIX-"))
	}
	assert.NotEqual(t, plan.TicketCodes[0], plan.TicketCodes[1])

	response, ok := result.Data.(model.PurchaseResponse)
	require.True(t, ok)
	assert.Equal(t, int64(10000), response.Wallet.Balance)
	assert.Equal(t, int64(-40000), response.Transaction.Amount)
	assert.Len(t, response.Tickets, 2)
	assert.Equal(t, entity.NotificationTicketPurchased, response.Notifications.Buyer.Type)
	assert.Equal(t, entity.NotificationTicketSold, response.Notifications.Seller.Type)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   3, // 60000 against a 50000 balance
	})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errObj.Kind)
	assert.Equal(t, 0, purchases.calls, "no transaction may run when funds are short")
}

func TestPurchaseMissingBuyerWalletIsInsufficientFunds(t *testing.T) {
	_, wallets, _, purchases, uc := newPurchaseFixture()
	wallets.wallets = wallets.wallets[1:] // drop the buyer wallet

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestPurchaseOwnEventForbidden(t *testing.T) {
	_, wallets, _, purchases, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     2, // the organizer
		Username:   "seller",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "SELF_PURCHASE_FORBIDDEN", errObj.Kind)
	assert.Equal(t, 0, wallets.findCalls, "self purchase is rejected before any wallet lookup")
	assert.Equal(t, 0, purchases.calls)
}

func TestPurchaseInsufficientInventory(t *testing.T) {
	_, _, events, purchases, uc := newPurchaseFixture()
	events.events[7].TicketQuantity = 1

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   2,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "INSUFFICIENT_INVENTORY", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestPurchaseInvalidWalletType(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Cash",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "INVALID_WALLET_TYPE", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestPurchaseUnknownEvent(t *testing.T) {
	_, _, _, _, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    99,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "NOT_FOUND", errObj.Kind)
}

func TestPurchaseSellerWalletMissing(t *testing.T) {
	_, wallets, _, purchases, uc := newPurchaseFixture()
	wallets.wallets = wallets.wallets[:1] // drop the seller wallet

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "SELLER_WALLET_MISSING", errObj.Kind)
	assert.Equal(t, 0, purchases.calls)
}

func TestPurchaseConflictRollsUpAsTransactionFailed(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()
	purchases.purchaseErr = repository.ErrTxConflict

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, "TRANSACTION_FAILED", errObj.Kind)
	assert.Equal(t, 500, errObj.Code)
}

func TestPurchaseReferenceIDsAreUnique(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()

	request := &model.PurchaseTicketRequest{
		UserID:     1,
		Username:   "buyer",
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	}

	result := uc.Purchase(context.Background(), request)
	require.NoError(t, result.Error)
	first := purchases.lastPlan.ReferenceID

	result = uc.Purchase(context.Background(), request)
	require.NoError(t, result.Error)
	second := purchases.lastPlan.ReferenceID

	assert.True(t, strings.HasPrefix(first, "TICKET-7-"))
	assert.True(t, strings.HasPrefix(second, "TICKET-7-"))
	assert.NotEqual(t, first, second, "ledger rows from distinct purchases stay distinguishable")
}

func TestPurchaseResolvesMissingUsername(t *testing.T) {
	_, _, _, purchases, uc := newPurchaseFixture()

	result := uc.Purchase(context.Background(), &model.PurchaseTicketRequest{
		UserID:     1,
		EventID:    7,
		WalletType: "Rendi Pay",
		Quantity:   1,
	})
	require.NoError(t, result.Error)

	require.NotNil(t, purchases.lastPlan)
	assert.Contains(t, purchases.lastPlan.DebitDescription, "buyer")
}
