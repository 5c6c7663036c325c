package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSQLiteConfig(t *testing.T) *Config {
	t.Helper()
	config := DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "wawi.db")
	config.Logging.Level = "silent"
	return config
}

func TestNewManagerSQLite(t *testing.T) {
	manager, err := NewManager(testSQLiteConfig(t))
	require.NoError(t, err)
	defer manager.Close()

	assert.Equal(t, DriverSQLite, manager.Driver())
	assert.NotNil(t, manager.DB())
	assert.NoError(t, manager.Ping(context.Background()))
}

func TestNewManagerNilConfig(t *testing.T) {
	_, err := NewManager(nil)
	assert.Error(t, err)
}

func TestNewManagerInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Path = ""
	_, err := NewManager(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestNewManagerCreatesDirectory(t *testing.T) {
	config := DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "nested", "deep", "wawi.db")
	config.Logging.Level = "silent"

	manager, err := NewManager(config)
	require.NoError(t, err)
	defer manager.Close()

	_, err = os.Stat(filepath.Dir(config.Path))
	assert.NoError(t, err)
}

func TestNewManagerMariaDBFallback(t *testing.T) {
	config := NewMariaDBConfig("127.0.0.1", 1, "wawi", "root", "")
	config.Path = filepath.Join(t.TempDir(), "fallback.db")
	config.Logging.Level = "silent"

	manager, err := NewManager(config)
	require.NoError(t, err)
	defer manager.Close()

	assert.Equal(t, DriverSQLite, manager.Driver())
	assert.NoError(t, manager.Ping(context.Background()))
}

func TestNewManagerMariaDBNoFallback(t *testing.T) {
	config := NewMariaDBConfig("127.0.0.1", 1, "wawi", "root", "")
	config.FallbackToSQLite = false

	_, err := NewManager(config)
	assert.Error(t, err)
}

func TestAutoMigrate(t *testing.T) {
	manager, err := NewManager(testSQLiteConfig(t))
	require.NoError(t, err)
	defer manager.Close()

	type widget struct {
		ID   uint   `gorm:"primaryKey"`
		Name string `gorm:"size:64"`
	}

	require.NoError(t, manager.AutoMigrate(&widget{}))
	assert.True(t, manager.DB().Migrator().HasTable(&widget{}))
}

func TestManagerStats(t *testing.T) {
	manager, err := NewManager(testSQLiteConfig(t))
	require.NoError(t, err)
	defer manager.Close()

	stats, err := manager.Stats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
}

func TestManagerClose(t *testing.T) {
	manager, err := NewManager(testSQLiteConfig(t))
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	assert.Error(t, manager.Ping(context.Background()))
}
