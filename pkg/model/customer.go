// Package model contains the persisted entities of the inventory system:
// products and customers. Both are plain validated value objects mapped to
// one table each via their GORM column tags.
package model

import (
	"errors"
	"regexp"
	"strings"
)

// Validation errors for customers
var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyAddress      = errors.New("customer address cannot be empty")
	ErrEmptyEmail        = errors.New("customer email cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format, expected name@example.com")
)

// emailPattern is deliberately loose: one @, a dotted domain. Anything
// stricter rejects real-world addresses.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// Customer represents one customer record.
type Customer struct {
	ID      uint   `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id" msgpack:"customer_id"`
	Name    string `gorm:"column:name;size:255;not null" json:"name" msgpack:"name"`
	Address string `gorm:"column:address;type:text;not null" json:"address" msgpack:"address"`
	Email   string `gorm:"column:email;size:255;not null" json:"email" msgpack:"email"`
	Phone   string `gorm:"column:phone;size:50" json:"phone" msgpack:"phone"`
}

// TableName returns the database table name for customers
func (Customer) TableName() string {
	return "customers"
}

// GetPrimaryKeyValue returns the customer's primary key value
func (c Customer) GetPrimaryKeyValue() interface{} {
	return c.ID
}

// NewCustomer creates a validated customer. Phone is optional; the ID is
// assigned by the database on insert.
func NewCustomer(name, address, email, phone string) (*Customer, error) {
	c := &Customer{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the customer's field-level invariants
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCustomerName
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrEmptyAddress
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// All returns one instance of every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{&Product{}, &Customer{}}
}
