package adapter

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/mateusmacedo/go-domain-events/pkg/application"
)

// NewEventLogHandler registra cada evento encaminhado recebido de um tópico.
func NewEventLogHandler(logger application.AppLogger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		application.LogInfo(msg.Context(), logger, "event received", map[string]interface{}{
			"message_uuid": msg.UUID,
			"event_id":     msg.Metadata.Get(MetadataEventID),
			"event_name":   msg.Metadata.Get(MetadataEventName),
			"occurred_at":  msg.Metadata.Get(MetadataOccurredAt),
			"payload":      string(msg.Payload),
		})
		return nil
	}
}

// NewEventLogRouter cria um router com um NewEventLogHandler por tópico.
func NewEventLogRouter(subscriber message.Subscriber, topics []string, appLogger application.AppLogger) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, NewWatermillLoggerAdapter(appLogger))
	if err != nil {
		return nil, err
	}
	router.AddMiddleware(middleware.Recoverer)

	handler := NewEventLogHandler(appLogger)
	for _, topic := range topics {
		router.AddNoPublisherHandler("log_"+topic, topic, subscriber, handler)
	}
	return router, nil
}
