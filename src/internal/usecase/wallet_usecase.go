package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/gateway/messaging"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/model/converter"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const recentTransactionLimit = 5

type WalletUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	WalletRepository      repository.WalletStore
	TransactionRepository repository.TransactionStore
	PurchaseRepository    repository.PurchaseStore
	Config                *viper.Viper
	Redis                 redis.UniversalClient
	WalletProducer        *messaging.WalletProducer
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository repository.WalletStore,
	transactionRepository repository.TransactionStore,
	purchaseRepository repository.PurchaseStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	walletProducer *messaging.WalletProducer,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                   logger,
		Validate:              validate,
		WalletRepository:      walletRepository,
		TransactionRepository: transactionRepository,
		PurchaseRepository:    purchaseRepository,
		Config:                cfg,
		Redis:                 redisClient,
		WalletProducer:        walletProducer,
	}
}

// GetBalances returns every wallet of the user with its recent transactions,
// lazily provisioning missing wallet types at zero balance.
func (c *WalletUseCase) GetBalances(ctx context.Context, request *model.GetBalancesRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetBalances", utils.ConvertString(request))
		return result
	}

	cacheKey := fmt.Sprintf("WALLET:BALANCE:%d", request.UserID)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var responses []model.WalletResponse
			if err := json.Unmarshal([]byte(cached), &responses); err == nil {
				result.Data = responses
				return result
			}
		}
	}

	wallets, err := c.WalletRepository.EnsureWallets(ctx, request.UserID, entity.AllWalletTypes())
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load wallets"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetBalances", utils.ConvertString(err))
		return result
	}

	responses := make([]model.WalletResponse, 0, len(wallets))
	for i := range wallets {
		transactions, err := c.TransactionRepository.FindByWallet(ctx, wallets[i].ID, recentTransactionLimit)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "failed to load wallet transactions"
			result.Error = errObj
			c.Log.Error("wallet-usecase", errObj.Message, "GetBalances", utils.ConvertString(err))
			return result
		}
		responses = append(responses, converter.WalletToResponse(&wallets[i], transactions))
	}

	if c.Redis != nil {
		if data, err := json.Marshal(responses); err == nil {
			if err := c.Redis.Set(ctx, cacheKey, data, 5*time.Minute).Err(); err != nil {
				c.Log.Error("wallet-usecase", fmt.Sprintf("cache write failed: %v", err), "GetBalances", "")
			}
		}
	}

	result.Data = responses
	return result
}

func (c *WalletUseCase) TopUp(ctx context.Context, request *model.TopUpRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", utils.ConvertString(request))
		return result
	}

	minimum := c.Config.GetInt64("wallet.topup.minimum")
	if request.Amount < minimum {
		errObj := httpError.NewBadRequest().WithKind("TOPUP_BELOW_MINIMUM")
		errObj.Message = fmt.Sprintf("minimum top up amount is %d", minimum)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", "")
		return result
	}

	walletType, ok := entity.ParseWalletType(request.WalletType)
	if !ok {
		errObj := httpError.NewBadRequest().WithKind("INVALID_WALLET_TYPE")
		errObj.Message = fmt.Sprintf("invalid wallet type %q", request.WalletType)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", "")
		return result
	}

	if _, err := c.WalletRepository.EnsureWallets(ctx, request.UserID, entity.AllWalletTypes()); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to provision wallets"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", utils.ConvertString(err))
		return result
	}

	wallet, err := c.WalletRepository.FindByUserAndType(ctx, request.UserID, walletType)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "wallet not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", utils.ConvertString(err))
		return result
	}

	plan := entity.TopUpPlan{
		WalletID:    wallet.ID,
		Amount:      request.Amount,
		Description: fmt.Sprintf("Top up %s amounting to %d", walletType, request.Amount),
		Notification: entity.Notification{
			UserID: request.UserID,
			Type:   entity.NotificationTopUpSuccess,
			Title:  "Top Up Successful",
			Message: fmt.Sprintf("Your %s wallet has been topped up by %d.",
				walletType, request.Amount),
		},
	}

	receipt, err := c.PurchaseRepository.ExecuteTopUp(ctx, plan)
	if err != nil {
		if errors.Is(err, repository.ErrTxConflict) {
			errObj := httpError.NewInternalServerError().WithKind("TRANSACTION_FAILED")
			errObj.Message = "top up could not be completed, please try again"
			result.Error = errObj
			c.Log.Error("wallet-usecase", errObj.Message, "TopUp", "concurrent-update")
			return result
		}
		errObj := httpError.NewInternalServerError().WithKind("TRANSACTION_FAILED")
		errObj.Message = "failed to complete the top up"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "TopUp", utils.ConvertString(err))
		return result
	}

	if c.Redis != nil {
		cacheKey := fmt.Sprintf("WALLET:BALANCE:%d", request.UserID)
		if err := c.Redis.Del(ctx, cacheKey).Err(); err != nil {
			c.Log.Error("wallet-usecase", fmt.Sprintf("cache invalidation failed: %v", err), "TopUp", "")
		}
	}

	if c.WalletProducer != nil {
		topUpEvent := &model.WalletTopUpEvent{
			ReferenceID: fmt.Sprintf("TOPUP-%d", receipt.Transaction.ID),
			UserID:      request.UserID,
			WalletID:    wallet.ID,
			WalletType:  string(walletType),
			Amount:      request.Amount,
			OccurredAt:  time.Now(),
		}
		if err := c.WalletProducer.SendTopUp(topUpEvent); err != nil {
			c.Log.Error("wallet-usecase", fmt.Sprintf("failed to publish top up event: %v", err), "TopUp", "")
		}
	}

	transactions, err := c.TransactionRepository.FindByWallet(ctx, wallet.ID, recentTransactionLimit)
	if err != nil {
		transactions = []entity.Transaction{receipt.Transaction}
	}

	c.Log.Info("wallet-usecase", "top up completed", "TopUp", utils.ConvertString(receipt.Transaction.ID))
	result.Data = converter.WalletToResponse(&receipt.Wallet, transactions)
	return result
}

func (c *WalletUseCase) GetTransactions(ctx context.Context, request *model.GetWalletTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetTransactions", utils.ConvertString(request))
		return result
	}

	walletType, ok := entity.ParseWalletType(request.WalletType)
	if !ok {
		errObj := httpError.NewBadRequest().WithKind("INVALID_WALLET_TYPE")
		errObj.Message = fmt.Sprintf("invalid wallet type %q", request.WalletType)
		result.Error = errObj
		return result
	}

	wallet, err := c.WalletRepository.FindByUserAndType(ctx, request.UserID, walletType)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "wallet not found"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetTransactions", utils.ConvertString(err))
		return result
	}

	transactions, err := c.TransactionRepository.FindByWallet(ctx, wallet.ID, 50)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load transactions"
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetTransactions", utils.ConvertString(err))
		return result
	}

	result.Data = converter.WalletToResponse(wallet, transactions)
	return result
}
