package application

import (
	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
)

const (
	CustomerCreatedEventName        = "CustomerCreatedEvent"
	CustomerAddressChangedEventName = "CustomerAddressChangedEvent"
)

// CustomerEvent é qualquer evento cujo payload é um retrato do cliente.
type CustomerEvent = pkgDomain.Event[domain.Customer]

type (
	CustomerEventHandler    = pkgApp.EventHandler[CustomerEvent, domain.Customer]
	CustomerEventDispatcher = pkgApp.EventDispatcher[CustomerEvent, domain.Customer]
)

type customerCreatedEvent struct {
	pkgDomain.BaseEvent[domain.Customer]
}

func (e customerCreatedEvent) EventName() string {
	return CustomerCreatedEventName
}

// NewCustomerCreatedEvent cria o evento de cliente criado.
func NewCustomerCreatedEvent(customer domain.Customer) CustomerEvent {
	return customerCreatedEvent{BaseEvent: pkgDomain.NewBaseEvent(customer)}
}

type customerAddressChangedEvent struct {
	pkgDomain.BaseEvent[domain.Customer]
}

func (e customerAddressChangedEvent) EventName() string {
	return CustomerAddressChangedEventName
}

// NewCustomerAddressChangedEvent cria o evento de endereço do cliente alterado.
func NewCustomerAddressChangedEvent(customer domain.Customer) CustomerEvent {
	return customerAddressChangedEvent{BaseEvent: pkgDomain.NewBaseEvent(customer)}
}
