package adapter

import (
	"errors"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
)

// PublisherConfig descreve a conexão com o Kafka.
type PublisherConfig struct {
	Brokers  []string
	ClientID string
}

// NewSaramaConfig retorna a configuração síncrona do sarama usada pelo
// publisher.
func NewSaramaConfig(clientID string) *sarama.Config {
	saramaConfig := kafka.DefaultSaramaSyncPublisherConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.ClientID = clientID
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	return saramaConfig
}

// NewKafkaPublisher cria um publisher watermill para o Kafka.
func NewKafkaPublisher(config PublisherConfig, logger watermill.LoggerAdapter) (*kafka.Publisher, error) {
	if len(config.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}

	return kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:               config.Brokers,
		Marshaler:             kafka.DefaultMarshaler{},
		OverwriteSaramaConfig: NewSaramaConfig(config.ClientID),
	}, logger)
}
