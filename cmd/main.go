package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mateusmacedo/go-domain-events/internal/customer"
	customerApp "github.com/mateusmacedo/go-domain-events/internal/customer/application"
	customerDomain "github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	"github.com/mateusmacedo/go-domain-events/internal/product"
	productApp "github.com/mateusmacedo/go-domain-events/internal/product/application"
	productDomain "github.com/mateusmacedo/go-domain-events/internal/product/domain"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
	"github.com/mateusmacedo/go-domain-events/pkg/infrastructure/config"
	watermillAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	appLogger, err := zapAdapter.NewZapAppLogger(cfg.AppName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	customerRepo, productRepo, err := newRepositories(cfg, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar os repositórios", map[string]interface{}{
			"error":   err,
			"storage": cfg.Storage,
		})
		return err
	}

	customerDispatcher := pkgInfra.NewSimpleEventDispatcher[customerApp.CustomerEvent, customerDomain.Customer](appLogger)
	productDispatcher := pkgInfra.NewSimpleEventDispatcher[productApp.ProductEvent, productDomain.Product](appLogger)

	publisher, err := newPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Error(ctx, "Erro ao inicializar o broker de eventos", map[string]interface{}{
			"error":  err,
			"broker": cfg.EventBroker,
		})
		return err
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				appLogger.Error(context.Background(), "Erro ao fechar o publisher", map[string]interface{}{"error": err})
			}
		}()

		customerForwarder := watermillAdapter.NewEventForwardHandler[customerApp.CustomerEvent, customerDomain.Customer](publisher, cfg.EventTopicPrefix, appLogger)
		customerDispatcher.Register(customerApp.CustomerCreatedEventName, customerForwarder)
		customerDispatcher.Register(customerApp.CustomerAddressChangedEventName, customerForwarder)

		productForwarder := watermillAdapter.NewEventForwardHandler[productApp.ProductEvent, productDomain.Product](publisher, cfg.EventTopicPrefix, appLogger)
		productDispatcher.Register(productApp.ProductCreatedEventName, productForwarder)

		appLogger.Info(ctx, "Encaminhamento de eventos habilitado", map[string]interface{}{"broker": cfg.EventBroker})

		localLog, err := startLocalEventLog(ctx, publisher, cfg.EventTopicPrefix, appLogger)
		if err != nil {
			appLogger.Error(ctx, "Erro ao assinar os eventos do gochannel", map[string]interface{}{"error": err})
			return err
		}
		if localLog != nil {
			appLogger.Info(ctx, "Eventos do gochannel registrados no log do processo", nil)
		}
	}

	idGenerator := pkgInfra.NewUUIDGenerator()
	customerSlice := customer.NewCustomerSlice(customerDispatcher, customerRepo, idGenerator, appLogger)
	productSlice := product.NewProductSlice(productDispatcher, productRepo, idGenerator, appLogger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	customerSlice.RegisterRoutes(router)
	productSlice.RegisterRoutes(router)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		appLogger.Info(ctx, "Sinal capturado", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		appLogger.Info(ctx, "Server starting on:"+cfg.HTTPAddr, nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(ctx, "Erro ao iniciar o servidor", map[string]interface{}{
				"error": err,
			})
			cancel()
		}
	}()

	<-ctx.Done()
	appLogger.Info(context.Background(), "Encerrando servidor...", nil)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(context.Background(), "Erro ao encerrar servidor", map[string]interface{}{
			"error": err,
		})
	}

	appLogger.Info(context.Background(), "Servidor encerrado", nil)
	return nil
}
