package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mateusmacedo/go-domain-events/internal/customer/domain"
	"github.com/mateusmacedo/go-domain-events/pkg/application"
)

type gormCustomerRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

// NewGormCustomerRepository espera um *gorm.DB já migrado com domain.Customer.
func NewGormCustomerRepository(db *gorm.DB, logger application.AppLogger) domain.CustomerRepository {
	return &gormCustomerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *gormCustomerRepository) Create(ctx context.Context, customer domain.Customer) error {
	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrCustomerAlreadyExists, customer.ID)
		}
		application.LogError(ctx, r.logger, "failed to save customer", err, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return err
	}
	return nil
}

func (r *gormCustomerRepository) Update(ctx context.Context, customer domain.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", customer.ID).
		Select("*").
		Updates(customer)
	if result.Error != nil {
		application.LogError(ctx, r.logger, "failed to update customer", result.Error, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customer.ID)
	}
	return nil
}

func (r *gormCustomerRepository) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
		}
		application.LogError(ctx, r.logger, "failed to find customer", err, map[string]interface{}{
			"customer_id": id,
		})
		return domain.Customer{}, err
	}
	return customer, nil
}
