package kafka

import (
	"fmt"

	"ticketing-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(brokers []string, logger log.Log) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &syncProducer{producer: producer, log: logger}, nil
}

func (p *syncProducer) Publish(topic string, key, value []byte) error {
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.Error("kafka", fmt.Sprintf("failed to publish to %s: %v", topic, err), "Publish", "")
		return err
	}

	p.log.Info("kafka", fmt.Sprintf("published to %s partition %d offset %d", topic, partition, offset), "Publish", "")
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
