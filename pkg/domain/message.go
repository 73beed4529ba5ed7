package domain

// Command pede uma mudança de estado. CommandName escolhe o manipulador no
// barramento de comandos.
type Command[T any] interface {
	CommandName() string
	Payload() T
}

// Query pede uma leitura sem efeitos colaterais.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
