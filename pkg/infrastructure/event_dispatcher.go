package infrastructure

import (
	"context"
	"slices"
	"sync"

	"github.com/mateusmacedo/go-domain-events/pkg/application"
	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

// simpleEventDispatcher entrega cada evento, de forma síncrona e em ordem de
// registro, aos manipuladores registrados para o nome do evento.
type simpleEventDispatcher[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

// NewSimpleEventDispatcher cria um dispatcher vazio.
func NewSimpleEventDispatcher[E domain.Event[T], T any](logger application.AppLogger) application.EventDispatcher[E, T] {
	return &simpleEventDispatcher[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

// Register adiciona o manipulador ao fim da lista do evento. Registros
// repetidos resultam em chamadas repetidas. Manipuladores nil são ignorados.
func (d *simpleEventDispatcher[E, T]) Register(eventName string, handler application.EventHandler[E, T]) {
	if handler == nil {
		application.LogDebug(context.Background(), d.logger, "nil event handler ignored", map[string]interface{}{
			"event_name": eventName,
		})
		return
	}

	d.mu.Lock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
	d.mu.Unlock()

	application.LogDebug(context.Background(), d.logger, "event handler registered", map[string]interface{}{
		"event_name": eventName,
	})
}

// Unregister remove todas as ocorrências do manipulador. A entrada do evento
// permanece, mesmo vazia.
func (d *simpleEventDispatcher[E, T]) Unregister(eventName string, handler application.EventHandler[E, T]) {
	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, found := d.handlers[eventName]
	if !found {
		return
	}

	kept := make([]application.EventHandler[E, T], 0, len(handlers))
	for _, h := range handlers {
		if !sameHandler(h, handler) {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(handlers) {
		return
	}
	d.handlers[eventName] = kept
}

func (d *simpleEventDispatcher[E, T]) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]application.EventHandler[E, T])
}

// Notify chama os manipuladores do evento sobre uma cópia da lista, então
// registros feitos durante a notificação só valem para a próxima. A primeira
// falha interrompe a entrega e é retornada como *application.HandlerError.
func (d *simpleEventDispatcher[E, T]) Notify(ctx context.Context, event E) error {
	eventName := event.EventName()

	d.mu.RLock()
	handlers := slices.Clone(d.handlers[eventName])
	d.mu.RUnlock()

	if len(handlers) == 0 {
		application.LogDebug(ctx, d.logger, "no handler registered for event", map[string]interface{}{
			"event_name": eventName,
		})
		return nil
	}

	for i, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			application.LogError(ctx, d.logger, "error handling event", err, map[string]interface{}{
				"event_name": eventName,
				"event_id":   event.EventID(),
				"position":   i,
			})
			return &application.HandlerError{EventName: eventName, Position: i, Err: err}
		}
	}

	application.LogDebug(ctx, d.logger, "event dispatched", map[string]interface{}{
		"event_name": eventName,
		"event_id":   event.EventID(),
		"handlers":   len(handlers),
	})
	return nil
}

// RegisteredHandlers retorna uma cópia do registro.
func (d *simpleEventDispatcher[E, T]) RegisteredHandlers() map[string][]application.EventHandler[E, T] {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registry := make(map[string][]application.EventHandler[E, T], len(d.handlers))
	for eventName, handlers := range d.handlers {
		registry[eventName] = slices.Clone(handlers)
		if registry[eventName] == nil {
			registry[eventName] = []application.EventHandler[E, T]{}
		}
	}
	return registry
}

// sameHandler compara manipuladores com ==. Tipos dinâmicos não comparáveis
// nunca são iguais.
func sameHandler(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
