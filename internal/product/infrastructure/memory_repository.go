package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
)

type InMemoryProductRepository struct {
	mu     sync.RWMutex
	data   map[string]domain.Product
	logger application.AppLogger
}

func NewInMemoryProductRepository(logger application.AppLogger) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		data:   make(map[string]domain.Product),
		logger: logger,
	}
}

func (r *InMemoryProductRepository) Create(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[product.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrProductAlreadyExists, product.ID)
	}
	r.data[product.ID] = product

	application.LogDebug(ctx, r.logger, "product saved", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (r *InMemoryProductRepository) FindByID(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.data[id]
	if !exists {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return product, nil
}
