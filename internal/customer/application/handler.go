package application

import (
	"context"

	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
)

type createCustomerHandler struct {
	dispatcher CustomerEventDispatcher
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *createCustomerHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateCustomerData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	customer, err := domain.NewCustomer(data.ID, data.Name)
	if err != nil {
		return err
	}

	if err := h.repository.Create(ctx, customer); err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving customer", err, map[string]interface{}{"customer_id": customer.ID})
		return err
	}

	// O estado já foi salvo: falhas dos manipuladores de evento não desfazem o comando.
	if err := h.dispatcher.Notify(ctx, NewCustomerCreatedEvent(customer)); err != nil {
		pkgApp.LogError(ctx, h.logger, "error notifying event handlers", err, map[string]interface{}{"customer_id": customer.ID})
	}

	pkgApp.LogInfo(ctx, h.logger, "customer created", map[string]interface{}{"customer_id": customer.ID})
	return nil
}

// NewCreateCustomerHandler cria o cliente e emite CustomerCreatedEvent.
func NewCreateCustomerHandler(dispatcher CustomerEventDispatcher, repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateCustomerData], CreateCustomerData] {
	return &createCustomerHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type changeCustomerAddressHandler struct {
	dispatcher CustomerEventDispatcher
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *changeCustomerAddressHandler) Handle(ctx context.Context, command pkgDomain.Command[ChangeCustomerAddressData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	customer, err := h.repository.FindByID(ctx, data.CustomerID)
	if err != nil {
		return err
	}

	address, err := domain.NewAddress(data.Street, data.Number, data.Zip, data.City)
	if err != nil {
		return err
	}
	if err := customer.ChangeAddress(address); err != nil {
		return err
	}

	if err := h.repository.Update(ctx, customer); err != nil {
		pkgApp.LogError(ctx, h.logger, "error updating customer", err, map[string]interface{}{"customer_id": customer.ID})
		return err
	}

	// O estado já foi salvo: falhas dos manipuladores de evento não desfazem o comando.
	if err := h.dispatcher.Notify(ctx, NewCustomerAddressChangedEvent(customer)); err != nil {
		pkgApp.LogError(ctx, h.logger, "error notifying event handlers", err, map[string]interface{}{"customer_id": customer.ID})
	}

	pkgApp.LogInfo(ctx, h.logger, "customer address changed", map[string]interface{}{"customer_id": customer.ID})
	return nil
}

// NewChangeCustomerAddressHandler altera o endereço e emite CustomerAddressChangedEvent.
func NewChangeCustomerAddressHandler(dispatcher CustomerEventDispatcher, repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[ChangeCustomerAddressData], ChangeCustomerAddressData] {
	return &changeCustomerAddressHandler{
		dispatcher: dispatcher,
		repository: repo,
		logger:     logger,
	}
}

type findCustomerHandler struct {
	repository domain.CustomerRepository
	logger     pkgApp.AppLogger
}

func (h *findCustomerHandler) Handle(ctx context.Context, query pkgDomain.Query[FindCustomerData]) (domain.Customer, error) {
	if ctx.Err() != nil {
		return domain.Customer{}, ctx.Err()
	}

	customer, err := h.repository.FindByID(ctx, query.Payload().CustomerID)
	if err != nil {
		pkgApp.LogDebug(ctx, h.logger, "customer lookup failed", map[string]interface{}{
			"customer_id": query.Payload().CustomerID,
			"error":       err,
		})
		return domain.Customer{}, err
	}
	return customer, nil
}

func NewFindCustomerHandler(repo domain.CustomerRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindCustomerData], FindCustomerData, domain.Customer] {
	return &findCustomerHandler{
		repository: repo,
		logger:     logger,
	}
}
