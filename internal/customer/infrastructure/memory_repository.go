package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
)

// InMemoryCustomerRepository é uma implementação em memória do repositório de clientes.
type InMemoryCustomerRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Customer
	logger application.AppLogger
}

func NewInMemoryCustomerRepository(logger application.AppLogger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		data:   make(map[string]domain.Customer),
		logger: logger,
	}
}

func (r *InMemoryCustomerRepository) Create(ctx context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[customer.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrCustomerAlreadyExists, customer.ID)
	}
	r.data[customer.ID] = customer

	application.LogDebug(ctx, r.logger, "customer saved", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return nil
}

func (r *InMemoryCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[customer.ID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customer.ID)
	}
	r.data[customer.ID] = customer

	application.LogDebug(ctx, r.logger, "customer updated", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return nil
}

func (r *InMemoryCustomerRepository) FindByID(_ context.Context, id string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.data[id]
	if !exists {
		return domain.Customer{}, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	return customer, nil
}

// Len retorna a quantidade de clientes armazenados.
func (r *InMemoryCustomerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
