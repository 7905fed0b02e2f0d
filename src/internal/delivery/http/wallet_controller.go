package http

import (
	"net/url"

	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetBalances(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetBalancesRequest{UserID: auth.UserID}
	result := c.UseCase.GetBalances(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetBalances", fiber.StatusOK, ctx)
}

func (c *WalletController) TopUp(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.TopUpRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.TopUp", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.TopUp(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "TopUp", fiber.StatusOK, ctx)
}

func (c *WalletController) GetTransactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	// wallet type names contain a space, so the path segment arrives encoded
	walletType, err := url.PathUnescape(ctx.Params("type"))
	if err != nil {
		walletType = ctx.Params("type")
	}

	request := &model.GetWalletTransactionsRequest{
		UserID:     auth.UserID,
		WalletType: walletType,
	}
	result := c.UseCase.GetTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetTransactions", fiber.StatusOK, ctx)
}
