package model

import (
	"errors"
	"strconv"
	"strings"
)

// Validation errors for products
var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrInvalidPrice     = errors.New("price must be a valid number")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be an integer")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
)

// Product represents one article in the inventory.
type Product struct {
	ID       uint    `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id" msgpack:"product_id"`
	Name     string  `gorm:"column:name;size:255;not null" json:"name" msgpack:"name"`
	Price    float64 `gorm:"column:price;type:decimal(10,2);not null" json:"price" msgpack:"price"`
	Quantity int     `gorm:"column:quantity;not null" json:"quantity" msgpack:"quantity"`
}

// TableName returns the database table name for products
func (Product) TableName() string {
	return "products"
}

// GetPrimaryKeyValue returns the product's primary key value
func (p Product) GetPrimaryKeyValue() interface{} {
	return p.ID
}

// NewProduct creates a validated product. The ID is assigned by the
// database on insert.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	p := &Product{
		Name:     strings.TrimSpace(name),
		Price:    price,
		Quantity: quantity,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the product's field-level invariants
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// ParsePrice converts user input into a price. A decimal comma is accepted
// alongside a decimal point ("1,99" parses as 1.99).
func ParsePrice(input string) (float64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if s == "" {
		return 0, ErrInvalidPrice
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if price < 0 {
		return 0, ErrNegativePrice
	}

	return price, nil
}

// ParseQuantity converts user input into a stock quantity
func ParseQuantity(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidQuantity
	}

	quantity, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	if quantity < 0 {
		return 0, ErrNegativeQuantity
	}

	return quantity, nil
}
