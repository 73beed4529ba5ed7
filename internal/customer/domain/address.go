package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAddress = errors.New("invalid address")

// Address é um objeto de valor: qualquer alteração gera um novo Address.
type Address struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

func NewAddress(street string, number int, zip, city string) (Address, error) {
	address := Address{
		Street: strings.TrimSpace(street),
		Number: number,
		Zip:    strings.TrimSpace(zip),
		City:   strings.TrimSpace(city),
	}
	if err := address.Validate(); err != nil {
		return Address{}, err
	}
	return address, nil
}

func (a Address) Validate() error {
	switch {
	case a.Street == "":
		return fmt.Errorf("%w: street is required", ErrInvalidAddress)
	case a.Number <= 0:
		return fmt.Errorf("%w: number must be greater than zero", ErrInvalidAddress)
	case a.Zip == "":
		return fmt.Errorf("%w: zip is required", ErrInvalidAddress)
	case a.City == "":
		return fmt.Errorf("%w: city is required", ErrInvalidAddress)
	}
	return nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.Street, a.Number, a.Zip, a.City)
}
