package application

import (
	"context"

	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
)

type createProductHandler struct {
	dispatcher ProductEventDispatcher
	repository domain.ProductRepository
	logger     pkgApp.AppLogger
}

func (h *createProductHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateProductData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	product, err := domain.NewProduct(data.ID, data.Name, data.Description, data.Price)
	if err != nil {
		return err
	}

	if err := h.repository.Create(ctx, product); err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving product", err, map[string]interface{}{"product_id": product.ID})
		return err
	}

	// O estado já foi salvo: falhas dos manipuladores de evento não desfazem o comando.
	if err := h.dispatcher.Notify(ctx, NewProductCreatedEvent(product)); err != nil {
		pkgApp.LogError(ctx, h.logger, "error notifying event handlers", err, map[string]interface{}{"product_id": product.ID})
	}

	pkgApp.LogInfo(ctx, h.logger, "product created", map[string]interface{}{"product_id": product.ID})
	return nil
}

// NewCreateProductHandler cadastra o produto e emite ProductCreatedEvent.
func NewCreateProductHandler(dispatcher ProductEventDispatcher, repo domain.ProductRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateProductData], CreateProductData] {
	return &createProductHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type findProductHandler struct {
	repository domain.ProductRepository
	logger     pkgApp.AppLogger
}

func (h *findProductHandler) Handle(ctx context.Context, query pkgDomain.Query[FindProductData]) (domain.Product, error) {
	if ctx.Err() != nil {
		return domain.Product{}, ctx.Err()
	}

	product, err := h.repository.FindByID(ctx, query.Payload().ProductID)
	if err != nil {
		pkgApp.LogDebug(ctx, h.logger, "product lookup failed", map[string]interface{}{
			"product_id": query.Payload().ProductID,
			"error":      err,
		})
		return domain.Product{}, err
	}
	return product, nil
}

func NewFindProductHandler(repo domain.ProductRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindProductData], FindProductData, domain.Product] {
	return &findProductHandler{
		repository: repo,
		logger:     logger,
	}
}
