package application

import (
	"context"

	pkgApp "github.com/mateusmacedo/go-domain-events/pkg/application"
)

type sendEmailWhenProductIsCreatedHandler struct {
	logger pkgApp.AppLogger
}

// Handle não envia e-mail de verdade; registra a mensagem que seria enviada.
func (h *sendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, event ProductEvent) error {
	product := event.Payload()
	pkgApp.LogInfo(ctx, h.logger, "Sending email to .....", map[string]interface{}{
		"event_id":     event.EventID(),
		"product_id":   product.ID,
		"product_name": product.Name,
		"price":        product.Price,
	})
	return nil
}

func NewSendEmailWhenProductIsCreatedHandler(logger pkgApp.AppLogger) ProductEventHandler {
	return &sendEmailWhenProductIsCreatedHandler{logger: logger}
}
