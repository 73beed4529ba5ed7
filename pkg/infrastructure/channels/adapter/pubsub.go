package adapter

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-domain-events/pkg/application"
	watermillAdapter "github.com/mateusmacedo/go-domain-events/pkg/infrastructure/watermill/adapter"
)

// NewGoChannelPubSub cria um pub/sub em memória do watermill, útil para
// desenvolvimento local e testes.
func NewGoChannelPubSub(appLogger application.AppLogger, outputBuffer int64) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: outputBuffer,
	}, watermillAdapter.NewWatermillLoggerAdapter(appLogger))
}
