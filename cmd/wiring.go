package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	customerApp "github.com/mateusmacedo/go-domain-events/internal/customer/application"
	customerDomain "github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	customerInfra "github.com/mateusmacedo/go-domain-events/internal/customer/infrastructure"
	productApp "github.com/mateusmacedo/go-domain-events/internal/product/application"
	productDomain "github.com/mateusmacedo/go-domain-events/internal/product/domain"
	productInfra "github.com/mateusmacedo/go-domain-events/internal/product/infrastructure"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
	channelsAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/channels/adapter"
	"github.com/mateusmacedo/go-domain-events/pkg/infrastructure/config"
	kafkaAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/watermill/adapter"
)

const goChannelOutputBuffer = 64

var forwardedEventNames = []string{
	customerApp.CustomerCreatedEventName,
	customerApp.CustomerAddressChangedEventName,
	productApp.ProductCreatedEventName,
}

func newRepositories(cfg config.Config, logger application.AppLogger) (customerDomain.CustomerRepository, productDomain.ProductRepository, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := pkgInfra.OpenPostgres(cfg.PostgresDSN, &customerDomain.Customer{}, &productDomain.Product{})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return customerInfra.NewGormCustomerRepository(db, logger), productInfra.NewGormProductRepository(db, logger), nil
	default:
		return customerInfra.NewInMemoryCustomerRepository(logger), productInfra.NewInMemoryProductRepository(logger), nil
	}
}

// newPublisher retorna nil quando o encaminhamento de eventos está desligado.
func newPublisher(cfg config.Config, logger application.AppLogger) (message.Publisher, error) {
	wmLogger := watermillAdapter.NewWatermillLoggerAdapter(logger)

	switch cfg.EventBroker {
	case config.BrokerGoChannel:
		return channelsAdapter.NewGoChannelPubSub(logger, goChannelOutputBuffer), nil
	case config.BrokerKafka:
		publisher, err := kafkaAdapter.NewKafkaPublisher(kafkaAdapter.PublisherConfig{
			Brokers:  cfg.KafkaBrokers,
			ClientID: cfg.AppName,
		}, wmLogger)
		if err != nil {
			return nil, fmt.Errorf("kafka publisher: %w", err)
		}
		return publisher, nil
	case config.BrokerRedis:
		client := redisAdapter.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		publisher, err := redisAdapter.NewRedisPublisher(client, wmLogger)
		if err != nil {
			return nil, fmt.Errorf("redis publisher: %w", err)
		}
		return publisher, nil
	default:
		return nil, nil
	}
}

// startLocalEventLog assina os tópicos encaminhados quando o broker é o
// gochannel, que só existe dentro deste processo. Para os demais brokers
// retorna nil. O router para quando ctx é cancelado.
func startLocalEventLog(ctx context.Context, publisher message.Publisher, topicPrefix string, logger application.AppLogger) (*message.Router, error) {
	pubSub, ok := publisher.(*gochannel.GoChannel)
	if !ok {
		return nil, nil
	}

	topics := make([]string, 0, len(forwardedEventNames))
	for _, name := range forwardedEventNames {
		topics = append(topics, topicPrefix+name)
	}

	router, err := watermillAdapter.NewEventLogRouter(pubSub, topics, logger)
	if err != nil {
		return nil, err
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- router.Run(ctx)
	}()

	select {
	case <-router.Running():
		return router, nil
	case err := <-runErr:
		if err == nil {
			err = errors.New("router closed before running")
		}
		return nil, fmt.Errorf("local event log: %w", err)
	}
}
