// Package redis provides the optional read-through cache for repository
// queries. When no cache manager is attached, repositories operate
// database-only; every operation here is best-effort from the caller's
// point of view.
package redis

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Value framing: the first byte says how the payload is stored.
const (
	frameRaw  byte = 0x00
	frameGzip byte = 0x01
)

// Manager manages Redis connections and cache operations
type Manager struct {
	config  *Config
	client  redis.UniversalClient
	metrics *Metrics
}

// NewManager creates a new Redis cache manager
func NewManager(config *Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid redis config: %w", err)
	}

	manager := &Manager{
		config:  config,
		metrics: NewMetrics(),
	}
	manager.initializeClient()

	return manager, nil
}

// initializeClient sets up the Redis client based on configuration
func (m *Manager) initializeClient() {
	if !m.config.Enabled {
		return
	}

	if m.config.IsClusterMode() {
		m.client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           m.config.Cluster.Addresses,
			Username:        m.config.Cluster.Username,
			Password:        m.config.Cluster.Password,
			PoolSize:        m.config.PoolSize,
			MinIdleConns:    m.config.MinIdleConns,
			ConnMaxLifetime: m.config.MaxConnAge,
			PoolTimeout:     m.config.PoolTimeout,
			ConnMaxIdleTime: m.config.IdleTimeout,
			ReadTimeout:     m.config.ReadTimeout,
			WriteTimeout:    m.config.WriteTimeout,
			DialTimeout:     m.config.DialTimeout,
		})
	} else {
		m.client = redis.NewClient(&redis.Options{
			Addr:            m.config.GetAddr(),
			Password:        m.config.Password,
			DB:              m.config.Database,
			PoolSize:        m.config.PoolSize,
			MinIdleConns:    m.config.MinIdleConns,
			ConnMaxLifetime: m.config.MaxConnAge,
			PoolTimeout:     m.config.PoolTimeout,
			ConnMaxIdleTime: m.config.IdleTimeout,
			ReadTimeout:     m.config.ReadTimeout,
			WriteTimeout:    m.config.WriteTimeout,
			DialTimeout:     m.config.DialTimeout,
		})
	}
}

// Config returns the manager's configuration
func (m *Manager) Config() *Config {
	return m.config
}

// Close closes the Redis connection
func (m *Manager) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// Ping tests the Redis connection. A disabled cache is a valid state and
// returns nil.
func (m *Manager) Ping(ctx context.Context) error {
	if !m.config.Enabled {
		return nil
	}
	if m.client == nil {
		return ErrClientNotInitialized
	}

	if err := m.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	return nil
}

// checkClient validates that cache is enabled and the client is initialized
func (m *Manager) checkClient() error {
	if !m.config.Enabled {
		return ErrCacheDisabled
	}
	if m.client == nil {
		return ErrClientNotInitialized
	}
	return nil
}

// Get retrieves a raw value from cache
func (m *Manager) Get(ctx context.Context, key string) ([]byte, error) {
	if err := m.checkClient(); err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := m.client.Get(ctx, key).Bytes()
	m.metrics.RecordGet(time.Since(start))

	if err == redis.Nil {
		m.metrics.RecordCacheMiss()
		return nil, ErrKeyNotFound
	}
	if err != nil {
		m.metrics.RecordCacheError()
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	m.metrics.RecordCacheHit()
	return data, nil
}

// Set stores a raw value with the default TTL
func (m *Manager) Set(ctx context.Context, key string, value []byte) error {
	return m.SetWithTTL(ctx, key, value, m.config.DefaultTTL)
}

// SetWithTTL stores a raw value with an explicit TTL
func (m *Manager) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := m.checkClient(); err != nil {
		return err
	}

	start := time.Now()
	err := m.client.Set(ctx, key, value, ttl).Err()
	m.metrics.RecordSet(time.Since(start))

	if err != nil {
		m.metrics.RecordCacheError()
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Delete removes a single key
func (m *Manager) Delete(ctx context.Context, key string) error {
	if err := m.checkClient(); err != nil {
		return err
	}

	m.metrics.RecordDelete()
	if err := m.client.Del(ctx, key).Err(); err != nil {
		m.metrics.RecordCacheError()
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

// DeleteKeys removes multiple keys
func (m *Manager) DeleteKeys(ctx context.Context, keys []string) error {
	if err := m.checkClient(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	m.metrics.RecordDelete()
	if err := m.client.Del(ctx, keys...).Err(); err != nil {
		m.metrics.RecordCacheError()
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

// InvalidatePattern removes every key matching the given glob pattern,
// scanning incrementally so large keyspaces don't block the server
func (m *Manager) InvalidatePattern(ctx context.Context, pattern string) error {
	if err := m.checkClient(); err != nil {
		return err
	}

	m.metrics.RecordInvalidation()

	iter := m.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := m.client.Del(ctx, keys...).Err(); err != nil {
				m.metrics.RecordCacheError()
				return fmt.Errorf("cache invalidation failed: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		m.metrics.RecordCacheError()
		return fmt.Errorf("cache scan failed: %w", err)
	}

	if len(keys) > 0 {
		if err := m.client.Del(ctx, keys...).Err(); err != nil {
			m.metrics.RecordCacheError()
			return fmt.Errorf("cache invalidation failed: %w", err)
		}
	}

	return nil
}

// SetValue encodes a value with msgpack and stores it
func (m *Manager) SetValue(ctx context.Context, key string, value interface{}) error {
	if err := m.checkClient(); err != nil {
		return err
	}

	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	return m.Set(ctx, key, append([]byte{frameRaw}, data...))
}

// GetValue retrieves a msgpack-encoded value into target
func (m *Manager) GetValue(ctx context.Context, key string, target interface{}) error {
	data, err := m.Get(ctx, key)
	if err != nil {
		return err
	}

	payload, err := unframe(data)
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return nil
}

// SetLargeValue encodes a value with msgpack and stores it, gzip-compressing
// payloads above the configured threshold
func (m *Manager) SetLargeValue(ctx context.Context, key string, value interface{}) error {
	if err := m.checkClient(); err != nil {
		return err
	}

	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}

	frame := frameRaw
	if m.config.LargeValue.EnableCompression && len(data) > m.config.LargeValue.CompressThreshold {
		compressed, err := compressData(data)
		if err == nil && len(compressed) < len(data) {
			m.metrics.RecordCompression(uint64(len(data) - len(compressed)))
			data = compressed
			frame = frameGzip
		}
	}

	return m.Set(ctx, key, append([]byte{frame}, data...))
}

// GetLargeValue retrieves a value stored by SetLargeValue into target
func (m *Manager) GetLargeValue(ctx context.Context, key string, target interface{}) error {
	return m.GetValue(ctx, key, target)
}

// Exists checks if a key exists in the cache
func (m *Manager) Exists(ctx context.Context, key string) (bool, error) {
	if err := m.checkClient(); err != nil {
		return false, err
	}

	n, err := m.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists failed: %w", err)
	}
	return n > 0, nil
}

// GetMetrics returns a snapshot of the cache metrics
func (m *Manager) GetMetrics() MetricsSnapshot {
	return m.metrics.GetSnapshot()
}

// ResetMetrics resets the cache metrics
func (m *Manager) ResetMetrics() {
	m.metrics.Reset()
}

// unframe strips the framing byte and decompresses if needed
func unframe(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrSerializationFailed)
	}

	switch data[0] {
	case frameRaw:
		return data[1:], nil
	case frameGzip:
		return decompressData(data[1:])
	default:
		return nil, fmt.Errorf("%w: unknown frame marker 0x%02x", ErrSerializationFailed, data[0])
	}
}

// compressData gzips a payload
func compressData(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompressData reverses compressData
func decompressData(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return out, nil
}
