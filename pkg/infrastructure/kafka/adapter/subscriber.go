package adapter

import (
	"errors"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
)

type SubscriberConfig struct {
	Brokers       []string
	ConsumerGroup string
	ClientID      string
}

func NewSaramaSubscriberConfig(clientID string) *sarama.Config {
	saramaConfig := kafka.DefaultSaramaSubscriberConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.ClientID = clientID
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	return saramaConfig
}

// NewKafkaSubscriber cria um subscriber watermill para o Kafka. A conexão só
// é aberta no primeiro Subscribe.
func NewKafkaSubscriber(config SubscriberConfig, logger watermill.LoggerAdapter) (*kafka.Subscriber, error) {
	if len(config.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}

	return kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:               config.Brokers,
		Unmarshaler:           kafka.DefaultMarshaler{},
		ConsumerGroup:         config.ConsumerGroup,
		OverwriteSaramaConfig: NewSaramaSubscriberConfig(config.ClientID),
	}, logger)
}
