package application

import (
	"errors"
	"fmt"
)

var (
	ErrCommandHandlerNotFound = errors.New("no handler registered for command")
	ErrQueryHandlerNotFound   = errors.New("no handler registered for query")
)

// HandlerError é retornado por Notify quando um manipulador falha. Os
// manipuladores seguintes da mesma notificação não são chamados.
type HandlerError struct {
	EventName string
	Position  int
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler #%d for event %s: %v", e.Position, e.EventName, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
