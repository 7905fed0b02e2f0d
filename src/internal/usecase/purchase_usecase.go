package usecase

import (
	"context"
	"database/sql"
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
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// PurchaseUseCase is the ticket purchase transaction engine. It checks every
// precondition before any write, then hands the whole mutation to the store
// as one atomic transaction.
type PurchaseUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	UserRepository     repository.UserStore
	WalletRepository   repository.WalletStore
	EventRepository    repository.EventStore
	PurchaseRepository repository.PurchaseStore
	Config             *viper.Viper
	Redis              redis.UniversalClient
	TicketProducer     *messaging.TicketProducer
}

func NewPurchaseUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserStore,
	walletRepository repository.WalletStore,
	eventRepository repository.EventStore,
	purchaseRepository repository.PurchaseStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	ticketProducer *messaging.TicketProducer,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		Log:                logger,
		Validate:           validate,
		UserRepository:     userRepository,
		WalletRepository:   walletRepository,
		EventRepository:    eventRepository,
		PurchaseRepository: purchaseRepository,
		Config:             cfg,
		Redis:              redisClient,
		TicketProducer:     ticketProducer,
	}
}

func (c *PurchaseUseCase) Purchase(ctx context.Context, request *model.PurchaseTicketRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", utils.ConvertString(request))
		return result
	}

	walletType, ok := entity.ParseWalletType(request.WalletType)
	if !ok {
		errObj := httpError.NewBadRequest().WithKind("INVALID_WALLET_TYPE")
		errObj.Message = fmt.Sprintf("invalid wallet type %q", request.WalletType)
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", "")
		return result
	}

	event, err := c.EventRepository.FindByID(ctx, request.EventID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("event with id %d not found", request.EventID)
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", utils.ConvertString(err))
		return result
	}

	if event.UserID == request.UserID {
		errObj := httpError.NewForbidden().WithKind("SELF_PURCHASE_FORBIDDEN")
		errObj.Message = "you cannot buy tickets for your own event"
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", "")
		return result
	}

	if event.TicketQuantity < request.Quantity {
		errObj := httpError.NewBadRequest().WithKind("INSUFFICIENT_INVENTORY")
		errObj.Message = fmt.Sprintf("only %d tickets remaining", event.TicketQuantity)
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", "")
		return result
	}

	totalAmount := event.TicketPrice * int64(request.Quantity)

	buyerWallet, err := c.WalletRepository.FindByUserAndType(ctx, request.UserID, walletType)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load buyer wallet"
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", utils.ConvertString(err))
		return result
	}
	if buyerWallet == nil || buyerWallet.Balance < totalAmount {
		errObj := httpError.NewBadRequest().WithKind("INSUFFICIENT_FUNDS")
		errObj.Message = "wallet balance is not sufficient"
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", "")
		return result
	}

	sellerWallet, err := c.WalletRepository.FindByUserAndType(ctx, event.UserID, walletType)
	if err != nil || sellerWallet == nil {
		errObj := httpError.NewBadRequest().WithKind("SELLER_WALLET_MISSING")
		errObj.Message = fmt.Sprintf("the organizer has no %s wallet", walletType)
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", utils.ConvertString(err))
		return result
	}

	if request.Username == "" {
		if buyer, err := c.UserRepository.FindByID(ctx, request.UserID); err == nil {
			request.Username = buyer.Username
		}
	}

	plan := c.buildPlan(request, event, walletType, buyerWallet, sellerWallet, totalAmount)

	receipt, err := c.PurchaseRepository.ExecutePurchase(ctx, plan)
	if err != nil {
		if errors.Is(err, repository.ErrTxConflict) {
			errObj := httpError.NewInternalServerError().WithKind("TRANSACTION_FAILED")
			errObj.Message = "purchase could not be completed, please try again"
			result.Error = errObj
			c.Log.Error("purchase-usecase", errObj.Message, "Purchase", "concurrent-update")
			return result
		}
		errObj := httpError.NewInternalServerError().WithKind("TRANSACTION_FAILED")
		errObj.Message = "failed to complete the purchase"
		result.Error = errObj
		c.Log.Error("purchase-usecase", errObj.Message, "Purchase", utils.ConvertString(err))
		return result
	}

	c.invalidateCaches(ctx, event.ID, request.UserID, event.UserID)

	purchasedEvent := &model.TicketPurchasedEvent{
		ReferenceID: plan.ReferenceID,
		EventID:     event.ID,
		BuyerID:     request.UserID,
		SellerID:    event.UserID,
		WalletType:  string(walletType),
		Quantity:    request.Quantity,
		TotalAmount: totalAmount,
		OccurredAt:  time.Now(),
	}
	if c.TicketProducer != nil {
		if err := c.TicketProducer.SendPurchased(purchasedEvent); err != nil {
			c.Log.Error("purchase-usecase", fmt.Sprintf("failed to publish purchase event: %v", err), "Purchase", "")
		}
	}

	c.Log.Info("purchase-usecase", "purchase completed", "Purchase", plan.ReferenceID)
	result.Data = converter.PurchaseReceiptToResponse(receipt)
	return result
}

func (c *PurchaseUseCase) buildPlan(
	request *model.PurchaseTicketRequest,
	event *entity.EventDetail,
	walletType entity.WalletType,
	buyerWallet, sellerWallet *entity.Wallet,
	totalAmount int64,
) entity.PurchasePlan {
	codes := make([]string, request.Quantity)
	for i := range codes {
		codes[i] = "TIX-" + uuid.NewString()
	}

	organizer := event.OrganizerUsername.String
	eventDate := event.Date.Format("02/01/2006")

	return entity.PurchasePlan{
		BuyerID:        request.UserID,
		BuyerWalletID:  buyerWallet.ID,
		SellerID:       event.UserID,
		SellerWalletID: sellerWallet.ID,
		EventID:        event.ID,
		WalletType:     walletType,
		Quantity:       request.Quantity,
		UnitPrice:      event.TicketPrice,
		TotalAmount:    totalAmount,
		TicketCodes:    codes,
		ReferenceID:    fmt.Sprintf("TICKET-%d-%s", event.ID, uuid.NewString()),
		DebitDescription: fmt.Sprintf("Purchase of %d ticket(s) for event %q by %s using %s",
			request.Quantity, event.Name, request.Username, walletType),
		CreditDescription: fmt.Sprintf("Payment received for %d ticket(s) for event %q via %s",
			request.Quantity, event.Name, walletType),
		BuyerNotification: entity.Notification{
			UserID: request.UserID,
			Type:   entity.NotificationTicketPurchased,
			Title:  "Ticket Purchase Successful",
			Message: fmt.Sprintf("You have successfully purchased %d ticket(s) for event %q from %s. The event takes place on %s.",
				request.Quantity, event.Name, organizer, eventDate),
		},
		SellerNotification: entity.Notification{
			UserID: event.UserID,
			Type:   entity.NotificationTicketSold,
			Title:  "Tickets Sold",
			Message: fmt.Sprintf("%d ticket(s) for event %q were purchased by %s. Total payment: %d. Remaining tickets: %d.",
				request.Quantity, event.Name, request.Username, totalAmount,
				event.TicketQuantity-request.Quantity),
		},
	}
}

// invalidateCaches drops every cached view the purchase just made stale; the
// store stays the only source of truth.
func (c *PurchaseUseCase) invalidateCaches(ctx context.Context, eventID, buyerID, sellerID int64) {
	if c.Redis == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("EVENT:DETAIL:%d", eventID),
		fmt.Sprintf("WALLET:BALANCE:%d", buyerID),
		fmt.Sprintf("WALLET:BALANCE:%d", sellerID),
	}
	if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
		c.Log.Error("purchase-usecase", fmt.Sprintf("cache invalidation failed: %v", err), "invalidateCaches", "")
	}
}
