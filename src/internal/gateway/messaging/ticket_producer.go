package messaging

import (
	"ticketing-service/src/internal/model"
	"ticketing-service/src/pkg/kafka"
	"ticketing-service/src/pkg/log"
)

type TicketProducer struct {
	PurchasedProducer Producer[*model.TicketPurchasedEvent]
}

func NewTicketProducer(producer kafka.Producer, log log.Log) *TicketProducer {
	return &TicketProducer{
		PurchasedProducer: Producer[*model.TicketPurchasedEvent]{
			Producer: producer,
			Topic:    "ticket-purchased",
			Log:      log,
		},
	}
}

func (t *TicketProducer) SendPurchased(event *model.TicketPurchasedEvent) error {
	return t.PurchasedProducer.Send(event)
}
