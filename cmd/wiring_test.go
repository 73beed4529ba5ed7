package main

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	customerInfra "github.com/mateusmacedo/go-domain-events/internal/customer/infrastructure"
	productApp "github.com/mateusmacedo/go-domain-events/internal/product/application"
	productDomain "github.com/mateusmacedo/go-domain-events/internal/product/domain"
	productInfra "github.com/mateusmacedo/go-domain-events/internal/product/infrastructure"
	"github.com/mateusmacedo/go-domain-events/pkg/infrastructure/config"
	watermillAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

func TestNewRepositories_Memory(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())

	customerRepo, productRepo, err := newRepositories(config.Config{Storage: config.StorageMemory}, logger)

	require.NoError(t, err)
	assert.IsType(t, &customerInfra.InMemoryCustomerRepository{}, customerRepo)
	assert.IsType(t, &productInfra.InMemoryProductRepository{}, productRepo)
}

func TestNewPublisher(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())

	publisher, err := newPublisher(config.Config{EventBroker: config.BrokerNone}, logger)
	require.NoError(t, err)
	assert.Nil(t, publisher)

	publisher, err = newPublisher(config.Config{EventBroker: config.BrokerGoChannel}, logger)
	require.NoError(t, err)
	assert.IsType(t, &gochannel.GoChannel{}, publisher)
	assert.NoError(t, publisher.Close())

	publisher, err = newPublisher(config.Config{EventBroker: config.BrokerKafka}, logger)
	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestStartLocalEventLog_OnlyForGoChannel(t *testing.T) {
	logger := zapAdapter.NewZapAppLoggerFrom(zap.NewNop())

	router, err := startLocalEventLog(context.Background(), nil, "", logger)

	require.NoError(t, err)
	assert.Nil(t, router)
}

func TestStartLocalEventLog_LogsForwardedEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zapAdapter.NewZapAppLoggerFrom(zap.New(core))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := newPublisher(config.Config{EventBroker: config.BrokerGoChannel}, logger)
	require.NoError(t, err)
	defer publisher.Close()

	router, err := startLocalEventLog(ctx, publisher, "shop.", logger)
	require.NoError(t, err)
	require.NotNil(t, router)
	assert.Len(t, router.Handlers(), len(forwardedEventNames))

	forwarder := watermillAdapter.NewEventForwardHandler[productApp.ProductEvent, productDomain.Product](publisher, "shop.", logger)
	event := productApp.NewProductCreatedEvent(productDomain.Product{ID: "p1", Name: "Product 1", Price: 10})
	require.NoError(t, forwarder.Handle(ctx, event))

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("event received").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
	entry := logs.FilterMessage("event received").All()[0]
	assert.Equal(t, productApp.ProductCreatedEventName, entry.ContextMap()["event_name"])
	assert.Equal(t, event.EventID(), entry.ContextMap()["event_id"])
}
