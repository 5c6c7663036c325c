package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammar0144/wawi4go/pkg/model"
)

func seedProducts(t *testing.T, products *ProductManager) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []model.Product{
		{Name: "Hammer 300g", Price: 9.49, Quantity: 58},
		{Name: "Hammer 500g", Price: 12.99, Quantity: 4},
		{Name: "Wasserwaage 60cm", Price: 14.95, Quantity: 0},
	} {
		product := p
		require.NoError(t, products.Add(ctx, &product))
	}
}

func TestSearchByName(t *testing.T) {
	products := testProductManager(t)
	seedProducts(t, products)

	hits, err := products.SearchByName(context.Background(), "Hammer")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = products.SearchByName(context.Background(), "wasserwaage")
	require.NoError(t, err)
	assert.Len(t, hits, 1, "sqlite LIKE is case-insensitive for ASCII")

	hits, err = products.SearchByName(context.Background(), "Nagel")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestInStock(t *testing.T) {
	products := testProductManager(t)
	seedProducts(t, products)

	inStock, err := products.InStock(context.Background())
	require.NoError(t, err)
	require.Len(t, inStock, 2)
	for _, p := range inStock {
		assert.Positive(t, p.Quantity)
	}
}
