package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	customer, err := NewCustomer("Anna Schmidt", "Hauptstraße 12, Berlin", "anna@example.com", "+49 30 1234567")
	require.NoError(t, err)
	assert.Equal(t, "Anna Schmidt", customer.Name)
	assert.Equal(t, "anna@example.com", customer.Email)
	assert.Equal(t, "+49 30 1234567", customer.Phone)
}

func TestNewCustomerPhoneOptional(t *testing.T) {
	customer, err := NewCustomer("Anna Schmidt", "Hauptstraße 12", "anna@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, customer.Phone)
}

func TestCustomerValidate(t *testing.T) {
	valid := Customer{
		Name:    "Anna Schmidt",
		Address: "Hauptstraße 12",
		Email:   "anna@example.com",
	}

	tests := []struct {
		name    string
		mutate  func(c *Customer)
		wantErr error
	}{
		{"valid", func(c *Customer) {}, nil},
		{"empty name", func(c *Customer) { c.Name = "" }, ErrEmptyCustomerName},
		{"empty address", func(c *Customer) { c.Address = "  " }, ErrEmptyAddress},
		{"empty email", func(c *Customer) { c.Email = "" }, ErrEmptyEmail},
		{"missing at sign", func(c *Customer) { c.Email = "anna.example.com" }, ErrInvalidEmail},
		{"missing domain dot", func(c *Customer) { c.Email = "anna@example" }, ErrInvalidEmail},
		{"spaces in email", func(c *Customer) { c.Email = "anna schmidt@example.com" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCustomerEmailFormats(t *testing.T) {
	accepted := []string{
		"anna@example.com",
		"m.fischer@example.com",
		"jonas-weber@mail.example.de",
		"a_b@sub.example.org",
	}
	for _, email := range accepted {
		c := Customer{Name: "X", Address: "Y", Email: email}
		assert.NoError(t, c.Validate(), email)
	}

	rejected := []string{
		"@example.com",
		"anna@",
		"anna@@example.com",
		"anna",
	}
	for _, email := range rejected {
		c := Customer{Name: "X", Address: "Y", Email: email}
		assert.Error(t, c.Validate(), email)
	}
}

func TestCustomerTableName(t *testing.T) {
	assert.Equal(t, "customers", Customer{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := All()
	require.Len(t, models, 2)
	assert.IsType(t, &Product{}, models[0])
	assert.IsType(t, &Customer{}, models[1])
}
