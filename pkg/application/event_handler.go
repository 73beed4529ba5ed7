package application

import (
	"context"

	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

// EventHandler reage a um evento despachado.
type EventHandler[E domain.Event[T], T any] interface {
	Handle(ctx context.Context, event E) error
}

// EventDispatcher mantém os manipuladores registrados por nome de evento e os
// notifica, em ordem de registro, no goroutine de quem chama Notify.
type EventDispatcher[E domain.Event[T], T any] interface {
	Register(eventName string, handler EventHandler[E, T])
	Unregister(eventName string, handler EventHandler[E, T])
	UnregisterAll()
	Notify(ctx context.Context, event E) error
	RegisteredHandlers() map[string][]EventHandler[E, T]
}
