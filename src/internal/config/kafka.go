package config

import (
	kafkaPkg "ticketing-service/src/pkg/kafka"
	"ticketing-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaProducer(config *viper.Viper, log log.Log) kafkaPkg.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	brokers := config.GetStringSlice("kafka.brokers")
	producer, err := kafkaPkg.NewProducer(brokers, log)
	if err != nil {
		panic(err)
	}

	return producer
}
