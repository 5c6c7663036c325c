// Package repository implements the generic repository over GORM with an
// optional cache-first read path.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/redis"

	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"
)

// Cache key constants for consistent key generation
const (
	cacheKeyPrefix     = "wawi4go"
	cacheKeySeparator  = ":"
	cacheKeyHashLength = 12 // Balance between uniqueness and key length
)

// GenericRepository provides CRUD operations with optional read-through
// caching. Writes invalidate every cached query for the entity's table.
type GenericRepository[T Entity] struct {
	db        *gorm.DB
	dbManager *db.Manager
	cache     *redis.Manager
	tableName string
	dbName    string // Database name for cache key isolation
}

// NewGenericRepository creates a repository backed by the given database
// manager. cacheManager may be nil for database-only operation.
func NewGenericRepository[T Entity](dbManager *db.Manager, cacheManager *redis.Manager) Repository[T] {
	var zero T
	tableName := zero.TableName()
	if tableName == "" {
		panic(fmt.Sprintf("entity type %T returned an empty TableName()", zero))
	}

	return &GenericRepository[T]{
		db:        dbManager.DB(),
		dbManager: dbManager,
		cache:     cacheManager,
		tableName: tableName,
		dbName:    databaseName(dbManager.Config()),
	}
}

// NewGenericRepositoryDBOnly creates a repository without a cache
func NewGenericRepositoryDBOnly[T Entity](manager *db.Manager) Repository[T] {
	return NewGenericRepository[T](manager, nil)
}

// databaseName derives the cache-key namespace from the connection config
func databaseName(config *db.Config) string {
	if config == nil {
		return "default"
	}
	switch config.ActiveDriver() {
	case db.DriverMariaDB:
		if config.Database != "" {
			return config.Database
		}
	case db.DriverSQLite:
		if config.IsMemorySQLite() {
			return "memory"
		}
		base := filepath.Base(config.Path)
		if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
			return name
		}
	}
	return "default"
}

// withQueryTimeout wraps a context with the configured query timeout
func (r *GenericRepository[T]) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.dbManager != nil && r.dbManager.Config() != nil {
		if timeout := r.dbManager.Config().QueryTimeout; timeout > 0 {
			return context.WithTimeout(ctx, timeout)
		}
	}
	return ctx, func() {}
}

// FindByID finds a record by primary key, cache-first
func (r *GenericRepository[T]) FindByID(ctx context.Context, id interface{}) (*T, error) {
	if id == nil {
		return nil, fmt.Errorf("id cannot be nil")
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	cacheKey := r.generateCacheKey("find_by_id", fmt.Sprintf("%v", id))

	if r.cache != nil {
		var entity T
		if err := r.cache.GetValue(ctx, cacheKey, &entity); err == nil {
			return &entity, nil
		}
		// Miss or cache error: fall through to the database
	}

	var entity T
	result := r.db.WithContext(ctx).First(&entity, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil // Not found, not an error
		}
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if r.cache != nil {
		// Best effort - ignore cache errors
		_ = r.cache.SetValue(ctx, cacheKey, entity)
	}

	return &entity, nil
}

// FindAll returns every record, cache-first
func (r *GenericRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	cacheKey := r.generateCacheKey("find_all", "")

	if r.cache != nil {
		var entities []T
		if err := r.cache.GetLargeValue(ctx, cacheKey, &entities); err == nil {
			return entities, nil
		}
	}

	var entities []T
	if result := r.db.WithContext(ctx).Find(&entities); result.Error != nil {
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if r.cache != nil {
		_ = r.cache.SetLargeValue(ctx, cacheKey, entities)
	}

	return entities, nil
}

// FindWhere returns records matching a parameterized condition, cache-first
func (r *GenericRepository[T]) FindWhere(ctx context.Context, query string, args ...interface{}) ([]T, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	cacheKey := r.generateCacheKeyFromQuery("find_where", query, args...)

	if r.cache != nil {
		var entities []T
		if err := r.cache.GetLargeValue(ctx, cacheKey, &entities); err == nil {
			return entities, nil
		}
	}

	var entities []T
	if result := r.db.WithContext(ctx).Where(query, args...).Find(&entities); result.Error != nil {
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if r.cache != nil {
		_ = r.cache.SetLargeValue(ctx, cacheKey, entities)
	}

	return entities, nil
}

// First returns the first record matching a parameterized condition
func (r *GenericRepository[T]) First(ctx context.Context, query string, args ...interface{}) (*T, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	cacheKey := r.generateCacheKeyFromQuery("first", query, args...)

	if r.cache != nil {
		var entity T
		if err := r.cache.GetValue(ctx, cacheKey, &entity); err == nil {
			return &entity, nil
		}
	}

	var entity T
	result := r.db.WithContext(ctx).Where(query, args...).First(&entity)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", result.Error)
	}

	if r.cache != nil {
		_ = r.cache.SetValue(ctx, cacheKey, entity)
	}

	return &entity, nil
}

// Count counts all records, cache-first
func (r *GenericRepository[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	cacheKey := r.generateCacheKey("count", "")

	if r.cache != nil {
		var count int64
		if err := r.cache.GetValue(ctx, cacheKey, &count); err == nil {
			return count, nil
		}
	}

	var count int64
	var entity T
	if result := r.db.WithContext(ctx).Model(&entity).Count(&count); result.Error != nil {
		return 0, fmt.Errorf("database error: %w", result.Error)
	}

	if r.cache != nil {
		_ = r.cache.SetValue(ctx, cacheKey, count)
	}

	return count, nil
}

// Exists checks whether a record with the given primary key exists
func (r *GenericRepository[T]) Exists(ctx context.Context, id interface{}) (bool, error) {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return entity != nil, nil
}

// Create inserts a record. The primary key is populated on the entity.
func (r *GenericRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("entity cannot be nil")
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// Update saves all fields of an existing record
func (r *GenericRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("entity cannot be nil")
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// Delete removes a record by primary key. Deleting a missing record is
// not an error.
func (r *GenericRepository[T]) Delete(ctx context.Context, id interface{}) error {
	if id == nil {
		return fmt.Errorf("id cannot be nil")
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("database error while finding entity to delete: %w", err)
	}

	if err := r.db.WithContext(ctx).Delete(&entity).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// CreateBatch inserts multiple records in one statement
func (r *GenericRepository[T]) CreateBatch(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}

	ctx, cancel := r.withQueryTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(&entities).Error; err != nil {
		return fmt.Errorf("batch create error: %w", err)
	}

	r.invalidate(ctx)
	return nil
}

// InvalidateCache removes every cached query for this entity's table
func (r *GenericRepository[T]) InvalidateCache(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}

	pattern := cacheKeyPrefix + cacheKeySeparator + r.dbName + cacheKeySeparator + r.tableName + cacheKeySeparator + "*"
	err := r.cache.InvalidatePattern(ctx, pattern)
	if redis.IsCacheDisabled(err) {
		return nil
	}
	return err
}

// WarmCache preloads the common whole-table queries
func (r *GenericRepository[T]) WarmCache(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}

	// Best effort
	_, _ = r.FindAll(ctx)
	_, _ = r.Count(ctx)

	return nil
}

// invalidate is the best-effort write-path invalidation
func (r *GenericRepository[T]) invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	_ = r.InvalidateCache(ctx)
}

// generateCacheKey creates a cache key for simple operations, namespaced
// by database and table
func (r *GenericRepository[T]) generateCacheKey(operation, suffix string) string {
	parts := []string{cacheKeyPrefix, r.dbName, r.tableName, operation}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, cacheKeySeparator)
}

// generateCacheKeyFromQuery creates a cache key from a query and its
// parameters, hashed for consistent short keys
func (r *GenericRepository[T]) generateCacheKeyFromQuery(operation, query string, args ...interface{}) string {
	argsData, err := json.Marshal(args)
	if err != nil {
		argsData = []byte(fmt.Sprintf("%v", args))
	}

	combined := query + cacheKeySeparator + string(argsData)
	hash := fmt.Sprintf("%016x", xxhash.Sum64String(combined))

	return r.generateCacheKey(operation, hash[:cacheKeyHashLength])
}
