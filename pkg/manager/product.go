package manager

import (
	"context"
	"fmt"

	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/model"
	"github.com/ammar0144/wawi4go/pkg/repository"

	"go.uber.org/zap"
)

// ProductManager manages the product inventory
type ProductManager struct {
	*Base[model.Product]
}

// NewProductManager creates a product manager over the given repository
func NewProductManager(repo repository.Repository[model.Product], log *zap.Logger) *ProductManager {
	return &ProductManager{Base: NewBase[model.Product](repo, log)}
}

// SearchByName returns products whose name contains the given term
func (m *ProductManager) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	cond, args := db.NewBuilder(model.Product{}.TableName()).
		Where("name", db.Like, "%"+term+"%").
		BuildWhere()

	products, err := m.repo.FindWhere(ctx, cond, args...)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return products, nil
}

// InStock returns products with a positive quantity
func (m *ProductManager) InStock(ctx context.Context) ([]model.Product, error) {
	cond, args := db.NewBuilder(model.Product{}.TableName()).
		Where("quantity", db.GreaterThan, 0).
		BuildWhere()

	products, err := m.repo.FindWhere(ctx, cond, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products in stock: %w", err)
	}
	return products, nil
}
