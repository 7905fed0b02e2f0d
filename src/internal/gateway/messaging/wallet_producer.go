package messaging

import (
	"ticketing-service/src/internal/model"
	"ticketing-service/src/pkg/kafka"
	"ticketing-service/src/pkg/log"
)

type WalletProducer struct {
	TopUpProducer Producer[*model.WalletTopUpEvent]
}

func NewWalletProducer(producer kafka.Producer, log log.Log) *WalletProducer {
	return &WalletProducer{
		TopUpProducer: Producer[*model.WalletTopUpEvent]{
			Producer: producer,
			Topic:    "wallet-topup",
			Log:      log,
		},
	}
}

func (w *WalletProducer) SendTopUp(event *model.WalletTopUpEvent) error {
	return w.TopUpProducer.Send(event)
}
