package adapter

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
)

// NewRedisSubscriber cria um subscriber watermill sobre Redis Streams. Com
// consumerGroup vazio cada subscriber recebe todas as mensagens.
func NewRedisSubscriber(client redis.UniversalClient, consumerGroup, consumer string, logger watermill.LoggerAdapter) (*redisstream.Subscriber, error) {
	if client == nil {
		return nil, errors.New("redis: client is required")
	}

	return redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
		Consumer:      consumer,
	}, logger)
}
