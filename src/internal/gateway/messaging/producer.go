package messaging

import (
	"encoding/json"

	"ticketing-service/src/internal/model"
	"ticketing-service/src/pkg/kafka"
	"ticketing-service/src/pkg/log"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		p.Log.Info("gateway/messaging", "producer disabled, skipping publish", p.Topic, "")
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging", "failed to marshal event", "Send", err.Error())
		return err
	}

	if err := p.Producer.Publish(p.Topic, []byte(event.GetId()), value); err != nil {
		p.Log.Error("gateway/messaging", "error publishing message", p.Topic, err.Error())
		return err
	}
	return nil
}
