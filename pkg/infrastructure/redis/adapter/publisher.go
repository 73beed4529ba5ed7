package adapter

import (
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
)

// NewRedisPublisher cria um publisher watermill sobre Redis Streams.
func NewRedisPublisher(client redis.UniversalClient, logger watermill.LoggerAdapter) (*redisstream.Publisher, error) {
	if client == nil {
		return nil, errors.New("redis: client is required")
	}

	return redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
}
