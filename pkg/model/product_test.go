package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	product, err := NewProduct("Hammer 300g", 9.49, 58)
	require.NoError(t, err)
	assert.Equal(t, "Hammer 300g", product.Name)
	assert.Equal(t, 9.49, product.Price)
	assert.Equal(t, 58, product.Quantity)
	assert.Equal(t, uint(0), product.ID)
}

func TestNewProductTrimsName(t *testing.T) {
	product, err := NewProduct("  Hammer  ", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hammer", product.Name)
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{"valid", Product{Name: "Hammer", Price: 9.49, Quantity: 1}, nil},
		{"free product", Product{Name: "Flyer", Price: 0, Quantity: 100}, nil},
		{"zero quantity", Product{Name: "Hammer", Price: 9.49, Quantity: 0}, nil},
		{"empty name", Product{Name: "", Price: 1, Quantity: 1}, ErrEmptyProductName},
		{"whitespace name", Product{Name: "   ", Price: 1, Quantity: 1}, ErrEmptyProductName},
		{"negative price", Product{Name: "Hammer", Price: -0.01, Quantity: 1}, ErrNegativePrice},
		{"negative quantity", Product{Name: "Hammer", Price: 1, Quantity: -1}, ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr error
	}{
		{"1.99", 1.99, nil},
		{"1,99", 1.99, nil},
		{" 24,50 ", 24.50, nil},
		{"0", 0, nil},
		{"129", 129, nil},
		{"", 0, ErrInvalidPrice},
		{"abc", 0, ErrInvalidPrice},
		{"1.9.9", 0, ErrInvalidPrice},
		{"-1,99", 0, ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"0", 0, nil},
		{"35", 35, nil},
		{" 12 ", 12, nil},
		{"", 0, ErrInvalidQuantity},
		{"abc", 0, ErrInvalidQuantity},
		{"1.5", 0, ErrInvalidQuantity},
		{"-3", 0, ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestProductTableName(t *testing.T) {
	assert.Equal(t, "products", Product{}.TableName())
}

func TestProductPrimaryKeyValue(t *testing.T) {
	p := Product{ID: 7}
	assert.Equal(t, uint(7), p.GetPrimaryKeyValue())
}
