package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event representa um evento no sistema.
//
// EventName identifica a categoria do evento e deve ser a mesma para todas as
// instâncias de um mesmo tipo. Cada tipo concreto declara o nome como uma
// constante retornada pelo próprio método.
type Event[T any] interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
	Payload() T
}

// BaseEvent guarda os dados comuns a todos os eventos. Tipos concretos embutem
// BaseEvent e implementam apenas EventName.
type BaseEvent[T any] struct {
	id         string
	occurredAt time.Time
	payload    T
}

// NewBaseEvent cria os dados base de um evento ocorrido agora.
func NewBaseEvent[T any](payload T) BaseEvent[T] {
	return BaseEvent[T]{
		id:         uuid.New().String(),
		occurredAt: time.Now().UTC(),
		payload:    payload,
	}
}

func (e BaseEvent[T]) EventID() string {
	return e.id
}

func (e BaseEvent[T]) OccurredAt() time.Time {
	return e.occurredAt
}

func (e BaseEvent[T]) Payload() T {
	return e.payload
}
