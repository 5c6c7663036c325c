package manager

import (
	"context"
	"fmt"

	"github.com/ammar0144/wawi4go/pkg/model"
	"github.com/ammar0144/wawi4go/pkg/repository"

	"go.uber.org/zap"
)

// CustomerManager manages the customer records
type CustomerManager struct {
	*Base[model.Customer]
}

// NewCustomerManager creates a customer manager over the given repository
func NewCustomerManager(repo repository.Repository[model.Customer], log *zap.Logger) *CustomerManager {
	return &CustomerManager{Base: NewBase[model.Customer](repo, log)}
}

// FindByEmail returns the customer with the given email address, or
// (nil, nil) when no customer matches
func (m *CustomerManager) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	customer, err := m.repo.First(ctx, "email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("finding customer by email: %w", err)
	}
	return customer, nil
}
