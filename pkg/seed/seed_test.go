package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/manager"
	"github.com/ammar0144/wawi4go/pkg/model"
	"github.com/ammar0144/wawi4go/pkg/repository"
)

func testManagers(t *testing.T) (*manager.ProductManager, *manager.CustomerManager) {
	t.Helper()

	config := db.DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "wawi.db")
	config.Logging.Level = "silent"

	dbManager, err := db.NewManager(config)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbManager.Close() })

	require.NoError(t, dbManager.AutoMigrate(model.All()...))

	products := manager.NewProductManager(
		repository.NewGenericRepositoryDBOnly[model.Product](dbManager), nil)
	customers := manager.NewCustomerManager(
		repository.NewGenericRepositoryDBOnly[model.Customer](dbManager), nil)
	return products, customers
}

func TestSeedDataIsValid(t *testing.T) {
	for _, p := range Products() {
		assert.NoError(t, p.Validate(), p.Name)
	}
	for _, c := range Customers() {
		assert.NoError(t, c.Validate(), c.Name)
	}
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	products, customers := testManagers(t)
	ctx := context.Background()

	result, err := Run(ctx, products, customers, nil)
	require.NoError(t, err)

	assert.Equal(t, len(Products()), result.ProductsAdded)
	assert.Equal(t, len(Customers()), result.CustomersAdded)
	assert.False(t, result.ProductsSkipped)
	assert.False(t, result.CustomersSkipped)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(Products())), count)
}

func TestRunSkipsNonEmptyTables(t *testing.T) {
	products, customers := testManagers(t)
	ctx := context.Background()

	_, err := Run(ctx, products, customers, nil)
	require.NoError(t, err)

	result, err := Run(ctx, products, customers, nil)
	require.NoError(t, err)

	assert.True(t, result.ProductsSkipped)
	assert.True(t, result.CustomersSkipped)
	assert.Zero(t, result.ProductsAdded)
	assert.Zero(t, result.CustomersAdded)

	count, err := products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(Products())), count)
}

func TestRunSeedsOnlyEmptyTable(t *testing.T) {
	products, customers := testManagers(t)
	ctx := context.Background()

	product := &model.Product{Name: "Vorhanden", Price: 1, Quantity: 1}
	require.NoError(t, products.Add(ctx, product))

	result, err := Run(ctx, products, customers, nil)
	require.NoError(t, err)

	assert.True(t, result.ProductsSkipped)
	assert.False(t, result.CustomersSkipped)
	assert.Equal(t, len(Customers()), result.CustomersAdded)
}
