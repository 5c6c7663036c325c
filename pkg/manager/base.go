// Package manager implements the application-facing managers: one per
// entity, each keeping an in-memory cache of loaded rows in front of its
// repository. Managers validate before writing and log every mutation.
package manager

import (
	"context"
	"fmt"
	"sync"

	"github.com/ammar0144/wawi4go/pkg/repository"

	"go.uber.org/zap"
)

// Model is what a manager handles: a repository entity that can validate
// its own fields.
type Model interface {
	repository.Entity
	Validate() error
}

// Base provides the common manager behavior: add-and-cache,
// remove-and-evict, reload-all. The items cache always reflects the last
// successful load plus local mutations.
type Base[T Model] struct {
	repo repository.Repository[T]
	log  *zap.Logger
	name string

	mu    sync.RWMutex
	items []T
}

// NewBase creates a manager base over the given repository
func NewBase[T Model](repo repository.Repository[T], log *zap.Logger) *Base[T] {
	var zero T
	name := zero.TableName()
	if log == nil {
		log = zap.NewNop()
	}

	return &Base[T]{
		repo: repo,
		log:  log.Named(name),
		name: name,
	}
}

// Add validates the item, inserts it, and appends it to the cache.
// The item's ID is populated from the database.
func (b *Base[T]) Add(ctx context.Context, item *T) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := (*item).Validate(); err != nil {
		b.log.Error("validation failed", zap.Error(err))
		return err
	}

	if err := b.repo.Create(ctx, item); err != nil {
		b.log.Error("add failed", zap.Error(err))
		return fmt.Errorf("adding to %s: %w", b.name, err)
	}

	b.mu.Lock()
	b.items = append(b.items, *item)
	b.mu.Unlock()

	b.log.Info("added", zap.Any("id", (*item).GetPrimaryKeyValue()))
	return nil
}

// Remove deletes the row with the given ID and evicts it from the cache.
// Removing an ID that does not exist is not an error.
func (b *Base[T]) Remove(ctx context.Context, id uint) error {
	if err := b.repo.Delete(ctx, id); err != nil {
		b.log.Error("remove failed", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("removing from %s: %w", b.name, err)
	}

	b.mu.Lock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.GetPrimaryKeyValue() != interface{}(id) {
			kept = append(kept, item)
		}
	}
	b.items = kept
	b.mu.Unlock()

	b.log.Info("removed", zap.Uint("id", id))
	return nil
}

// LoadAll replaces the cache with every row in the table. Rows that fail
// validation are skipped with a logged error; the rest still load.
func (b *Base[T]) LoadAll(ctx context.Context) error {
	rows, err := b.repo.FindAll(ctx)
	if err != nil {
		b.log.Error("load failed", zap.Error(err))
		return fmt.Errorf("loading %s: %w", b.name, err)
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			b.log.Error("skipping invalid row",
				zap.Any("id", row.GetPrimaryKeyValue()),
				zap.Error(err))
			continue
		}
		items = append(items, row)
	}

	b.mu.Lock()
	b.items = items
	b.mu.Unlock()

	b.log.Info("loaded", zap.Int("count", len(items)))
	return nil
}

// Items returns a copy of the cached items
func (b *Base[T]) Items() []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	items := make([]T, len(b.items))
	copy(items, b.items)
	return items
}

// GetByID reads a single row through the repository. Returns (nil, nil)
// when the ID does not exist.
func (b *Base[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	item, err := b.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting %s by id: %w", b.name, err)
	}
	return item, nil
}

// Count returns the number of rows in the table
func (b *Base[T]) Count(ctx context.Context) (int64, error) {
	return b.repo.Count(ctx)
}

// Repository exposes the underlying repository
func (b *Base[T]) Repository() repository.Repository[T] {
	return b.repo
}
