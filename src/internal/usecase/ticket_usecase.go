package usecase

import (
	"context"
	"errors"
	"fmt"

	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
	"ticketing-service/src/internal/model/converter"
	"ticketing-service/src/internal/repository"
	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/log"
	"ticketing-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type TicketUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	TicketRepository repository.TicketStore
}

func NewTicketUseCase(
	logger log.Log,
	validate *validator.Validate,
	ticketRepository repository.TicketStore,
) *TicketUseCase {
	return &TicketUseCase{
		Log:              logger,
		Validate:         validate,
		TicketRepository: ticketRepository,
	}
}

func (c *TicketUseCase) ListTickets(ctx context.Context, request *model.ListTicketsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "ListTickets", utils.ConvertString(request))
		return result
	}

	tickets, err := c.TicketRepository.FindByUser(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load tickets"
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "ListTickets", utils.ConvertString(err))
		return result
	}

	responses := make([]model.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, converter.TicketDetailToResponse(&tickets[i]))
	}
	result.Data = responses
	return result
}

func (c *TicketUseCase) TradeHistory(ctx context.Context, request *model.TradeHistoryRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "TradeHistory", utils.ConvertString(request))
		return result
	}

	tickets, err := c.TicketRepository.FindTrade(ctx, request.UserID, request.Side)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load trade history"
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "TradeHistory", utils.ConvertString(err))
		return result
	}

	responses := make([]model.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, converter.TicketDetailToResponse(&tickets[i]))
	}
	result.Data = responses
	return result
}

// SendTicket marks a sold ticket as delivered by the event organizer and
// notifies the buyer. Guarded so a ticket can only be sent once.
func (c *TicketUseCase) SendTicket(ctx context.Context, request *model.SendTicketRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "SendTicket", utils.ConvertString(request))
		return result
	}

	ticket, err := c.TicketRepository.FindDetailByID(ctx, request.TicketID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("ticket with id %d not found", request.TicketID)
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "SendTicket", utils.ConvertString(err))
		return result
	}

	// not revealing whether the ticket exists to non-owners
	if ticket.EventOwnerID != request.UserID {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("ticket with id %d not found", request.TicketID)
		result.Error = errObj
		c.Log.Error("ticket-usecase", "ticket does not belong to one of the caller's events", "SendTicket", "")
		return result
	}

	if ticket.IsSent {
		errObj := httpError.NewConflict().WithKind("ALREADY_SENT")
		errObj.Message = "ticket has already been sent"
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "SendTicket", "")
		return result
	}

	notification := entity.Notification{
		UserID: ticket.UserID,
		Type:   entity.NotificationTicketSent,
		Title:  "Ticket Sent",
		Message: fmt.Sprintf("Your ticket for event %q has been sent. Check your ticket page.",
			ticket.EventName),
	}

	updated, err := c.TicketRepository.MarkSent(ctx, request.TicketID, notification)
	if err != nil {
		if errors.Is(err, repository.ErrTxConflict) {
			errObj := httpError.NewConflict().WithKind("ALREADY_SENT")
			errObj.Message = "ticket has already been sent"
			result.Error = errObj
			c.Log.Error("ticket-usecase", errObj.Message, "SendTicket", "concurrent-update")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to mark ticket as sent"
		result.Error = errObj
		c.Log.Error("ticket-usecase", errObj.Message, "SendTicket", utils.ConvertString(err))
		return result
	}

	c.Log.Info("ticket-usecase", "ticket marked as sent", "SendTicket", updated.Code)
	result.Data = converter.TicketToResponse(updated)
	return result
}
