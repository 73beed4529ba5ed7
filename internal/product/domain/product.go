package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProduct       = errors.New("invalid product")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
)

type Product struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func NewProduct(id, name, description string, price float64) (Product, error) {
	product := Product{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
	}
	if err := product.Validate(); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (p Product) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("%w: price must be greater than or equal to zero", ErrInvalidProduct)
	}
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must be greater than or equal to zero", ErrInvalidProduct)
	}
	p.Price = price
	return nil
}

type ProductRepository interface {
	Create(ctx context.Context, product Product) error
	FindByID(ctx context.Context, id string) (Product, error)
}
