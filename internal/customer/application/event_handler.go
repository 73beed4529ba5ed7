package application

import (
	"context"
	"fmt"

	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
)

type firstCustomerCreatedLogHandler struct {
	logger pkgApp.AppLogger
}

func (h *firstCustomerCreatedLogHandler) Handle(ctx context.Context, event CustomerEvent) error {
	pkgApp.LogInfo(ctx, h.logger, "Esse é o primeiro console.log do evento: CustomerCreated", map[string]interface{}{
		"event_id":    event.EventID(),
		"customer_id": event.Payload().ID,
	})
	return nil
}

func NewFirstCustomerCreatedLogHandler(logger pkgApp.AppLogger) CustomerEventHandler {
	return &firstCustomerCreatedLogHandler{logger: logger}
}

type secondCustomerCreatedLogHandler struct {
	logger pkgApp.AppLogger
}

func (h *secondCustomerCreatedLogHandler) Handle(ctx context.Context, event CustomerEvent) error {
	pkgApp.LogInfo(ctx, h.logger, "Esse é o segundo console.log do evento: CustomerCreated", map[string]interface{}{
		"event_id":    event.EventID(),
		"customer_id": event.Payload().ID,
	})
	return nil
}

func NewSecondCustomerCreatedLogHandler(logger pkgApp.AppLogger) CustomerEventHandler {
	return &secondCustomerCreatedLogHandler{logger: logger}
}

type customerAddressChangedLogHandler struct {
	logger pkgApp.AppLogger
}

func (h *customerAddressChangedLogHandler) Handle(ctx context.Context, event CustomerEvent) error {
	customer := event.Payload()
	msg := fmt.Sprintf("Endereço do cliente: %s, %s alterado para: %s", customer.ID, customer.Name, customer.Address)
	pkgApp.LogInfo(ctx, h.logger, msg, map[string]interface{}{
		"event_id":    event.EventID(),
		"customer_id": customer.ID,
	})
	return nil
}

func NewCustomerAddressChangedLogHandler(logger pkgApp.AppLogger) CustomerEventHandler {
	return &customerAddressChangedLogHandler{logger: logger}
}
