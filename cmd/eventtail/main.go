// Command eventtail acompanha os eventos encaminhados ao broker pelo serviço
// principal e registra cada um no log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	customerApp "github.com/mateusmacedo/go-domain-events/internal/customer/application"
	productApp "github.com/mateusmacedo/go-domain-events/internal/product/application"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
	"github.com/mateusmacedo/go-domain-events/pkg/infrastructure/config"
	kafkaAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

var eventNames = []string{
	customerApp.CustomerCreatedEventName,
	customerApp.CustomerAddressChangedEventName,
	productApp.ProductCreatedEventName,
}

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run registra as falhas antes de retornar, assim os defers rodam antes do
// os.Exit em main.
func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	appLogger, err := zapAdapter.NewZapAppLogger(cfg.AppName+"-tail", cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	logger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)

	subscriber, err := newSubscriber(cfg, logger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao criar subscriber", map[string]interface{}{
			"error":  err,
			"broker": cfg.EventBroker,
		})
		return err
	}
	defer func() {
		if err := subscriber.Close(); err != nil {
			appLogger.Error(context.Background(), "Erro ao fechar subscriber", map[string]interface{}{"error": err})
		}
	}()

	router, err := newRouter(subscriber, cfg.EventTopicPrefix, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao criar router", map[string]interface{}{"error": err})
		return err
	}

	appLogger.Info(ctx, "Acompanhando eventos", map[string]interface{}{
		"broker": cfg.EventBroker,
		"events": eventNames,
	})
	if err := router.Run(ctx); err != nil {
		appLogger.Error(context.Background(), "Erro ao executar router", map[string]interface{}{"error": err})
		return err
	}
	return nil
}

func newSubscriber(cfg config.Config, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	switch cfg.EventBroker {
	case config.BrokerKafka:
		subscriber, err := kafkaAdapter.NewKafkaSubscriber(kafkaAdapter.SubscriberConfig{
			Brokers:       cfg.KafkaBrokers,
			ConsumerGroup: cfg.ConsumerGroup,
			ClientID:      cfg.AppName,
		}, logger)
		if err != nil {
			return nil, err
		}
		return subscriber, nil
	case config.BrokerRedis:
		client := redisAdapter.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		subscriber, err := redisAdapter.NewRedisSubscriber(client, cfg.ConsumerGroup, watermill.NewShortUUID(), logger)
		if err != nil {
			return nil, err
		}
		return subscriber, nil
	default:
		// gochannel vive dentro do processo do serviço e não pode ser acompanhado daqui.
		return nil, fmt.Errorf("EVENT_BROKER=%q cannot be tailed, use %s or %s", cfg.EventBroker, config.BrokerKafka, config.BrokerRedis)
	}
}

func newRouter(subscriber message.Subscriber, topicPrefix string, appLogger application.AppLogger) (*message.Router, error) {
	topics := make([]string, 0, len(eventNames))
	for _, name := range eventNames {
		topics = append(topics, topicPrefix+name)
	}
	return watermillAdapter.NewEventLogRouter(subscriber, topics, appLogger)
}
