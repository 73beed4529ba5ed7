package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateusmacedo/go-domain-events/pkg/application"
	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

type simpleQueryBus[Q domain.Query[D], D any, R any] struct {
	handlers map[string]application.QueryHandler[Q, D, R]
	mu       sync.RWMutex
	logger   application.AppLogger
}

func NewSimpleQueryBus[Q domain.Query[D], D any, R any](logger application.AppLogger) application.QueryBus[Q, D, R] {
	return &simpleQueryBus[Q, D, R]{
		handlers: make(map[string]application.QueryHandler[Q, D, R]),
		logger:   logger,
	}
}

func (bus *simpleQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[queryName] = handler
}

// Dispatch executa a consulta em um goroutine próprio para respeitar o
// cancelamento do contexto.
func (bus *simpleQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	queryName := query.QueryName()

	bus.mu.RLock()
	handler, found := bus.handlers[queryName]
	bus.mu.RUnlock()

	var zero R
	if !found {
		application.LogError(ctx, bus.logger, "no handler registered for query", nil, map[string]interface{}{
			"query_name": queryName,
		})
		return zero, fmt.Errorf("%w: %s", application.ErrQueryHandlerNotFound, queryName)
	}

	type result struct {
		value R
		err   error
	}
	resultChan := make(chan result, 1)

	go func() {
		value, err := handler.Handle(ctx, query)
		resultChan <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		application.LogError(ctx, bus.logger, "query cancelled", ctx.Err(), map[string]interface{}{
			"query_name": queryName,
		})
		return zero, ctx.Err()
	case res := <-resultChan:
		return res.value, res.err
	}
}
