package converter

import (
	"ticketing-service/src/internal/entity"
	"ticketing-service/src/internal/model"
)

func TicketToResponse(ticket *entity.Ticket) model.TicketResponse {
	return model.TicketResponse{
		ID:           ticket.ID,
		Code:         ticket.Code,
		EventID:      ticket.EventID,
		PurchaseDate: ticket.PurchaseDate,
		Price:        ticket.Price,
		Status:       string(ticket.Status),
		WalletType:   string(ticket.WalletType),
		IsSent:       ticket.IsSent,
		SentAt:       ticket.SentAt,
	}
}

func TicketDetailToResponse(ticket *entity.TicketDetail) model.TicketResponse {
	response := TicketToResponse(&ticket.Ticket)
	response.EventName = ticket.EventName
	eventDate := ticket.EventDate
	response.EventDate = &eventDate
	if ticket.BuyerName.Valid {
		response.BuyerName = ticket.BuyerName.String
	}
	return response
}

func PurchaseReceiptToResponse(receipt *entity.PurchaseReceipt) model.PurchaseResponse {
	response := model.PurchaseResponse{
		Wallet:      WalletToResponse(&receipt.BuyerWallet, nil),
		Event:       EventToResponse(&receipt.Event),
		Transaction: TransactionToResponse(&receipt.DebitTransaction),
		Notifications: model.PurchaseNotifications{
			Buyer:  NotificationToResponse(&receipt.BuyerNotification),
			Seller: NotificationToResponse(&receipt.SellerNotification),
		},
	}
	for i := range receipt.Tickets {
		response.Tickets = append(response.Tickets, TicketToResponse(&receipt.Tickets[i]))
	}
	return response
}
