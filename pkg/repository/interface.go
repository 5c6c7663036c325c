package repository

import (
	"context"
)

// Repository defines the generic data-access interface.
//
// Read operations are cache-first when a cache manager is attached; write
// operations invalidate the entity's cached queries. Lookups that match
// nothing return (nil, nil) - absence is not an error.
type Repository[T Entity] interface {
	// Queries
	FindByID(ctx context.Context, id interface{}) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindWhere(ctx context.Context, query string, args ...interface{}) ([]T, error)
	First(ctx context.Context, query string, args ...interface{}) (*T, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id interface{}) (bool, error)

	// Commands
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id interface{}) error
	CreateBatch(ctx context.Context, entities []*T) error

	// Cache Management
	InvalidateCache(ctx context.Context) error
	WarmCache(ctx context.Context) error
}
