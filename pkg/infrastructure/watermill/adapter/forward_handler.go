package adapter

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mateusmacedo/go-domain-events/pkg/application"
	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

const (
	MetadataEventID    = "event_id"
	MetadataEventName  = "event_name"
	MetadataOccurredAt = "occurred_at"
)

// EventForwardHandler republica eventos despachados em um message.Publisher
// do watermill, um tópico por nome de evento. Falhas de publicação são
// retornadas como falhas do manipulador.
type EventForwardHandler[E domain.Event[T], T any] struct {
	publisher   message.Publisher
	topicPrefix string
	logger      application.AppLogger
}

func NewEventForwardHandler[E domain.Event[T], T any](publisher message.Publisher, topicPrefix string, logger application.AppLogger) *EventForwardHandler[E, T] {
	return &EventForwardHandler[E, T]{
		publisher:   publisher,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

// Topic retorna o tópico usado para o evento.
func (h *EventForwardHandler[E, T]) Topic(eventName string) string {
	return h.topicPrefix + eventName
}

func (h *EventForwardHandler[E, T]) Handle(ctx context.Context, event E) error {
	eventName := event.EventName()
	topic := h.Topic(eventName)

	payload, err := application.MarshalPayload(event.Payload())
	if err != nil {
		application.LogError(ctx, h.logger, "error marshalling event payload", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	msg := message.NewMessage(event.EventID(), payload)
	msg.Metadata.Set(MetadataEventID, event.EventID())
	msg.Metadata.Set(MetadataEventName, eventName)
	msg.Metadata.Set(MetadataOccurredAt, event.OccurredAt().Format(time.RFC3339Nano))
	msg.SetContext(ctx)

	if err := h.publisher.Publish(topic, msg); err != nil {
		application.LogError(ctx, h.logger, "error forwarding event", err, map[string]interface{}{
			"event_name": eventName,
			"topic":      topic,
		})
		return err
	}

	application.LogDebug(ctx, h.logger, "event forwarded", map[string]interface{}{
		"event_name": eventName,
		"event_id":   event.EventID(),
		"topic":      topic,
	})
	return nil
}
