package product

import (
	"github.com/go-chi/chi/v5"

	"github.com/mateusmacedo/go-domain-events/internal/product/application"
	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	"github.com/mateusmacedo/go-domain-events/internal/product/infrastructure"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-domain-events/pkg/infrastructure"
)

type ProductSlice struct {
	httpHandler *infrastructure.ProductHTTPHandler
}

func NewProductSlice(
	dispatcher application.ProductEventDispatcher,
	repository domain.ProductRepository,
	idGenerator pkgDomain.IDGenerator[string],
	logger pkgApp.AppLogger,
) *ProductSlice {
	commandBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateProductData], application.CreateProductData](logger)
	queryBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindProductData], application.FindProductData, domain.Product](logger)

	commandBus.RegisterHandler(application.CreateProductCommandName, application.NewCreateProductHandler(dispatcher, repository, logger))
	queryBus.RegisterHandler(application.FindProductQueryName, application.NewFindProductHandler(repository, logger))

	dispatcher.Register(application.ProductCreatedEventName, application.NewSendEmailWhenProductIsCreatedHandler(logger))

	return &ProductSlice{
		httpHandler: infrastructure.NewProductHTTPHandler(commandBus, queryBus, idGenerator),
	}
}

func (s *ProductSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
