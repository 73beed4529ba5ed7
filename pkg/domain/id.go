package domain

// IDGenerator gera identificadores para novas entidades.
type IDGenerator[T any] func() T
