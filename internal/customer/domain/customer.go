package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

// Customer é a entidade cliente. Métodos que alteram estado validam a
// entidade inteira antes de aplicar a mudança.
type Customer struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name"`
	Address      Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Active       bool    `json:"active"`
	RewardPoints int     `json:"rewardPoints"`
}

func NewCustomer(id, name string) (Customer, error) {
	customer := Customer{
		ID:   strings.TrimSpace(id),
		Name: strings.TrimSpace(name),
	}
	if err := customer.Validate(); err != nil {
		return Customer{}, err
	}
	return customer, nil
}

func (c Customer) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidCustomer)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	return nil
}

func (c *Customer) ChangeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	c.Name = name
	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.Address = address
	return nil
}

// Activate exige um endereço cadastrado.
func (c *Customer) Activate() error {
	if c.Address.IsZero() {
		return fmt.Errorf("%w: address is mandatory to activate a customer", ErrInvalidCustomer)
	}
	c.Active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.Active = false
}

func (c Customer) IsActive() bool {
	return c.Active
}

func (c *Customer) AddRewardPoints(points int) error {
	if points <= 0 {
		return fmt.Errorf("%w: reward points must be positive", ErrInvalidCustomer)
	}
	c.RewardPoints += points
	return nil
}

// CustomerRepository define a persistência de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer Customer) error
	Update(ctx context.Context, customer Customer) error
	FindByID(ctx context.Context, id string) (Customer, error)
}
