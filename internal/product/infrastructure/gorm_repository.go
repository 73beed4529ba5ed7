package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-domain-events/internal/product/domain"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormProductRepository(db *gorm.DB, logger application.AppLogger) domain.ProductRepository {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gormProductRepository) Create(ctx context.Context, product domain.Product) error {
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrProductAlreadyExists, product.ID)
		}
		application.LogError(ctx, r.logger, "failed to save product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *gormProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
		}
		application.LogError(ctx, r.logger, "failed to find product", err, map[string]interface{}{
			"product_id": id,
		})
		return domain.Product{}, err
	}
	return product, nil
}
