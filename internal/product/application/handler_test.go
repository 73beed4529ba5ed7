package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-domain-events/internal/product/application"
	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	"github.com/mateusmacedo/go-domain-events/internal/product/infrastructure"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

type spyHandler struct {
	mu     sync.Mutex
	events []application.ProductEvent
	err    error
}

func (h *spyHandler) Handle(_ context.Context, event application.ProductEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *spyHandler) received() []application.ProductEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]application.ProductEvent(nil), h.events...)
}

type fixture struct {
	logger     pkgApp.AppLogger
	logs       *observer.ObservedLogs
	dispatcher application.ProductEventDispatcher
	repository *infrastructure.InMemoryProductRepository
}

func newFixture() fixture {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zapAdapter.NewZapAppLoggerFrom(zap.New(core))
	return fixture{
		logger:     logger,
		logs:       logs,
		dispatcher: pkgInfra.NewSimpleEventDispatcher[application.ProductEvent, domain.Product](logger),
		repository: infrastructure.NewInMemoryProductRepository(logger),
	}
}

func product1() domain.Product {
	return domain.Product{ID: "1", Name: "Product 1", Description: "Product 1 description", Price: 10.0}
}

func TestProductCreatedEvent(t *testing.T) {
	event := application.NewProductCreatedEvent(product1())

	assert.Equal(t, "ProductCreatedEvent", event.EventName())
	assert.NotEmpty(t, event.EventID())
	assert.False(t, event.OccurredAt().IsZero())
	assert.Equal(t, product1(), event.Payload())
}

func TestProductDispatcher_RegisterUnregister(t *testing.T) {
	f := newFixture()
	handler := application.NewSendEmailWhenProductIsCreatedHandler(f.logger)

	f.dispatcher.Register(application.ProductCreatedEventName, handler)
	registry := f.dispatcher.RegisteredHandlers()
	require.Len(t, registry[application.ProductCreatedEventName], 1)
	assert.Equal(t, handler, registry[application.ProductCreatedEventName][0])

	f.dispatcher.Unregister(application.ProductCreatedEventName, handler)
	registry = f.dispatcher.RegisteredHandlers()
	assert.Contains(t, registry, application.ProductCreatedEventName)
	assert.Empty(t, registry[application.ProductCreatedEventName])

	f.dispatcher.Register(application.ProductCreatedEventName, handler)
	f.dispatcher.UnregisterAll()
	assert.NotContains(t, f.dispatcher.RegisteredHandlers(), application.ProductCreatedEventName)
}

func TestProductDispatcher_NotifySendsEmail(t *testing.T) {
	f := newFixture()
	spy := &spyHandler{}
	f.dispatcher.Register(application.ProductCreatedEventName, application.NewSendEmailWhenProductIsCreatedHandler(f.logger))
	f.dispatcher.Register(application.ProductCreatedEventName, spy)

	require.NoError(t, f.dispatcher.Notify(context.Background(), application.NewProductCreatedEvent(product1())))

	require.Len(t, spy.received(), 1)
	assert.Equal(t, product1(), spy.received()[0].Payload())

	emails := f.logs.FilterMessage("Sending email to .....").All()
	require.Len(t, emails, 1)
	assert.Equal(t, "Product 1", emails[0].ContextMap()["product_name"])
}

func TestCreateProductHandler(t *testing.T) {
	f := newFixture()
	spy := &spyHandler{}
	f.dispatcher.Register(application.ProductCreatedEventName, spy)
	handler := application.NewCreateProductHandler(f.dispatcher, f.repository, f.logger)

	err := handler.Handle(context.Background(), application.NewCreateProductCommand(application.CreateProductData{
		ID:          "1",
		Name:        "Product 1",
		Description: "Product 1 description",
		Price:       10.0,
	}))

	require.NoError(t, err)
	stored, err := f.repository.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, product1(), stored)
	require.Len(t, spy.received(), 1)
	assert.Equal(t, product1(), spy.received()[0].Payload())
}

func TestCreateProductHandler_Failures(t *testing.T) {
	f := newFixture()
	spy := &spyHandler{}
	f.dispatcher.Register(application.ProductCreatedEventName, spy)
	handler := application.NewCreateProductHandler(f.dispatcher, f.repository, f.logger)
	ctx := context.Background()

	err := handler.Handle(ctx, application.NewCreateProductCommand(application.CreateProductData{ID: "1", Name: "Product 1", Price: -1}))
	assert.ErrorIs(t, err, domain.ErrInvalidProduct)

	require.NoError(t, handler.Handle(ctx, application.NewCreateProductCommand(application.CreateProductData{ID: "1", Name: "Product 1"})))
	err = handler.Handle(ctx, application.NewCreateProductCommand(application.CreateProductData{ID: "1", Name: "Product 1"}))
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)

	assert.Len(t, spy.received(), 1)
}

func TestCreateProductHandler_EventHandlerFailureKeepsProduct(t *testing.T) {
	f := newFixture()
	first := &spyHandler{}
	f.dispatcher.Register(application.ProductCreatedEventName, first)
	f.dispatcher.Register(application.ProductCreatedEventName, &spyHandler{err: errors.New("smtp unavailable")})
	handler := application.NewCreateProductHandler(f.dispatcher, f.repository, f.logger)

	err := handler.Handle(context.Background(), application.NewCreateProductCommand(application.CreateProductData{ID: "1", Name: "Product 1"}))

	require.NoError(t, err)
	_, err = f.repository.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, first.received(), 1)
	failures := f.logs.FilterMessage("error notifying event handlers").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "1", failures[0].ContextMap()["product_id"])
	assert.Equal(t, "handler #1 for event ProductCreatedEvent: smtp unavailable", failures[0].ContextMap()["error"])
}

func TestFindProductHandler(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.repository.Create(context.Background(), product1()))
	handler := application.NewFindProductHandler(f.repository, f.logger)

	found, err := handler.Handle(context.Background(), application.NewFindProductQuery(application.FindProductData{ProductID: "1"}))
	require.NoError(t, err)
	assert.Equal(t, product1(), found)

	_, err = handler.Handle(context.Background(), application.NewFindProductQuery(application.FindProductData{ProductID: "2"}))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
