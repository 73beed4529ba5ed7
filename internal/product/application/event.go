package application

import (
	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-domain-events/pkg/domain"
)

const ProductCreatedEventName = "ProductCreatedEvent"

type ProductEvent = pkgDomain.Event[domain.Product]

type (
	ProductEventHandler    = pkgApp.EventHandler[ProductEvent, domain.Product]
	ProductEventDispatcher = pkgApp.EventDispatcher[ProductEvent, domain.Product]
)

type productCreatedEvent struct {
	pkgDomain.BaseEvent[domain.Product]
}

func (e productCreatedEvent) EventName() string {
	return ProductCreatedEventName
}

func NewProductCreatedEvent(product domain.Product) ProductEvent {
	return productCreatedEvent{BaseEvent: pkgDomain.NewBaseEvent(product)}
}
