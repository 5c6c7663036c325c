// Package wawi4go is a small inventory and customer management library
// ("Warenwirtschaft") over SQLite or MariaDB, with an optional Redis
// read-through cache.
package wawi4go

import (
	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/manager"
	"github.com/ammar0144/wawi4go/pkg/model"
	"github.com/ammar0144/wawi4go/pkg/redis"
	"github.com/ammar0144/wawi4go/pkg/repository"
)

// Config represents database configuration
type Config = db.Config

// RedisConfig represents cache configuration
type RedisConfig = redis.Config

// Entity interface that all repository entities implement
type Entity = repository.Entity

// Product and Customer are the managed entities
type (
	Product  = model.Product
	Customer = model.Customer
)

// Repository provides the generic repository interface
type Repository[T Entity] interface {
	repository.Repository[T]
}

// NewManager creates a new database manager
func NewManager(config *Config) (*db.Manager, error) {
	return db.NewManager(config)
}

// NewRepository creates a new repository instance.
// If cacheManager is nil, the repository operates in database-only mode.
func NewRepository[T Entity](dbManager *db.Manager, cacheManager *redis.Manager) repository.Repository[T] {
	return repository.NewGenericRepository[T](dbManager, cacheManager)
}

// NewRedisManager creates a new cache manager
func NewRedisManager(config *RedisConfig) (*redis.Manager, error) {
	return redis.NewManager(config)
}

// NewProductManager creates the product manager in database-only mode
func NewProductManager(dbManager *db.Manager) *manager.ProductManager {
	return manager.NewProductManager(repository.NewGenericRepositoryDBOnly[model.Product](dbManager), nil)
}

// NewCustomerManager creates the customer manager in database-only mode
func NewCustomerManager(dbManager *db.Manager) *manager.CustomerManager {
	return manager.NewCustomerManager(repository.NewGenericRepositoryDBOnly[model.Customer](dbManager), nil)
}
