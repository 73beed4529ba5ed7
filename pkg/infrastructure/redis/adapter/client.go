package adapter

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient cria um cliente go-redis para o endereço informado.
func NewRedisClient(addr, password string, db int) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
