package infrastructure

import (
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

func GenerateUUID() string {
	return uuid.New().String()
}

// NewUUIDGenerator retorna um gerador de ids baseado em UUID v4.
func NewUUIDGenerator() domain.IDGenerator[string] {
	return GenerateUUID
}
