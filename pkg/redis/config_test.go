package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.Enabled)
	assert.Equal(t, time.Hour, config.DefaultTTL)
	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, 6379, config.Port)
	assert.True(t, config.LargeValue.EnableCompression)
	assert.NoError(t, config.Validate())
}

func TestValidateSkippedWhenDisabled(t *testing.T) {
	config := &Config{Enabled: false}
	assert.NoError(t, config.Validate())
}

func TestValidateEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing host", func(c *Config) { c.Host = "" }, "host is required"},
		{"zero port", func(c *Config) { c.Port = 0 }, "port must be positive"},
		{"zero ttl", func(c *Config) { c.DefaultTTL = 0 }, "default_ttl"},
		{"zero pool size", func(c *Config) { c.PoolSize = 0 }, "pool_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.Enabled = true
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetAddr(t *testing.T) {
	config := &Config{Host: "cache.example.com", Port: 6380}
	assert.Equal(t, "cache.example.com:6380", config.GetAddr())
}

func TestIsClusterMode(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.IsClusterMode())

	config.Cluster.Enabled = true
	assert.False(t, config.IsClusterMode(), "cluster without addresses is not cluster mode")

	config.Cluster.Addresses = []string{"node1:6379", "node2:6379"}
	assert.True(t, config.IsClusterMode())
}

func TestClusterModeSkipsHostValidation(t *testing.T) {
	config := DefaultConfig()
	config.Enabled = true
	config.Host = ""
	config.Cluster.Enabled = true
	config.Cluster.Addresses = []string{"node1:6379"}
	assert.NoError(t, config.Validate())
}
