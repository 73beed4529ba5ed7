package application

import (
	"context"

	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

type CommandHandler[C domain.Command[T], T any] interface {
	Handle(ctx context.Context, command C) error
}

// CommandBus entrega cada comando ao único manipulador registrado para o seu
// nome. Registrar o mesmo nome de novo substitui o manipulador anterior.
type CommandBus[C domain.Command[T], T any] interface {
	RegisterHandler(commandName string, handler CommandHandler[C, T])
	Dispatch(ctx context.Context, command C) error
}

type QueryHandler[Q domain.Query[T], T any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// QueryBus tem as mesmas regras de registro do CommandBus e devolve o
// resultado do manipulador.
type QueryBus[Q domain.Query[D], D any, R any] interface {
	RegisterHandler(queryName string, handler QueryHandler[Q, D, R])
	Dispatch(ctx context.Context, query Q) (R, error)
}
