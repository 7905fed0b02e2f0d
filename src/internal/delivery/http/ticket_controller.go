package http

import (
	"ticketing-service/src/internal/delivery/http/middleware"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/usecase"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TicketController struct {
	Log             log.Log
	PurchaseUseCase *usecase.PurchaseUseCase
	TicketUseCase   *usecase.TicketUseCase
}

func NewTicketController(purchaseUseCase *usecase.PurchaseUseCase, ticketUseCase *usecase.TicketUseCase, logger log.Log) *TicketController {
	return &TicketController{
		Log:             logger,
		PurchaseUseCase: purchaseUseCase,
		TicketUseCase:   ticketUseCase,
	}
}

func (c *TicketController) Purchase(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.PurchaseTicketRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TicketController.Purchase", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	request.Username = auth.Username

	result := c.PurchaseUseCase.Purchase(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Purchase", fiber.StatusOK, ctx)
}

func (c *TicketController) ListTickets(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListTicketsRequest{UserID: auth.UserID}
	result := c.TicketUseCase.ListTickets(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "ListTickets", fiber.StatusOK, ctx)
}

func (c *TicketController) TradeHistory(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	side := ctx.Query("type", "buy")
	request := &model.TradeHistoryRequest{UserID: auth.UserID, Side: side}
	result := c.TicketUseCase.TradeHistory(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "TradeHistory", fiber.StatusOK, ctx)
}

func (c *TicketController) SendTicket(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	ticketID, err := ctx.ParamsInt("id")
	if err != nil || ticketID <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid ticket id"
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.SendTicketRequest{UserID: auth.UserID, TicketID: int64(ticketID)}
	result := c.TicketUseCase.SendTicket(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "SendTicket", fiber.StatusOK, ctx)
}
