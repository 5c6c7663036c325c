package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DriverSQLite, config.Driver)
	assert.Equal(t, DefaultSQLitePath, config.Path)
	assert.True(t, config.FallbackToSQLite)
	assert.Equal(t, 25, config.MaxOpenConns)
	assert.Equal(t, 5, config.MaxIdleConns)
	assert.NoError(t, config.Validate())
}

func TestNewMariaDBConfig(t *testing.T) {
	config := NewMariaDBConfig("db.example.com", 3307, "wawi", "wawi_user", "secret")
	assert.Equal(t, DriverMariaDB, config.Driver)
	assert.Equal(t, "db.example.com", config.Host)
	assert.Equal(t, 3307, config.Port)
	assert.Equal(t, "wawi", config.Database)
	assert.True(t, config.FallbackToSQLite)
	assert.NoError(t, config.Validate())
}

func TestNewMariaDBConfigDefaultPort(t *testing.T) {
	config := NewMariaDBConfig("localhost", 0, "wawi", "root", "")
	assert.Equal(t, 3306, config.Port)
}

func TestActiveDriverDefaultsToSQLite(t *testing.T) {
	config := &Config{}
	assert.Equal(t, DriverSQLite, config.ActiveDriver())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"sqlite without path", func(c *Config) { c.Path = "" }, "path is required"},
		{"unsupported driver", func(c *Config) { c.Driver = "postgres" }, "unsupported driver"},
		{"mariadb without host", func(c *Config) {
			c.Driver = DriverMariaDB
			c.Database = "wawi"
			c.Username = "root"
		}, "host is required"},
		{"mariadb bad port", func(c *Config) {
			c.Driver = DriverMariaDB
			c.Host = "localhost"
			c.Port = 70000
			c.Database = "wawi"
			c.Username = "root"
		}, "port must be between"},
		{"mariadb without database", func(c *Config) {
			c.Driver = DriverMariaDB
			c.Host = "localhost"
			c.Username = "root"
		}, "name is required"},
		{"mariadb without username", func(c *Config) {
			c.Driver = DriverMariaDB
			c.Host = "localhost"
			c.Database = "wawi"
		}, "username is required"},
		{"fallback without sqlite path", func(c *Config) {
			c.Driver = DriverMariaDB
			c.Host = "localhost"
			c.Database = "wawi"
			c.Username = "root"
			c.Path = ""
		}, "fallback requires"},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }, "max_open_conns"},
		{"idle above open", func(c *Config) {
			c.MaxOpenConns = 2
			c.MaxIdleConns = 5
		}, "max_idle_conns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMariaDBDSN(t *testing.T) {
	config := NewMariaDBConfig("db.example.com", 3307, "wawi", "wawi_user", "secret")
	dsn := config.MariaDBDSN()

	assert.True(t, strings.HasPrefix(dsn, "wawi_user:secret@tcp(db.example.com:3307)/wawi"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "collation=utf8mb4_unicode_ci")
}

func TestSQLiteDSN(t *testing.T) {
	config := DefaultConfig()
	config.Path = "/tmp/test.db"
	assert.Equal(t, "/tmp/test.db", config.SQLiteDSN())
}

func TestIsMemorySQLite(t *testing.T) {
	config := DefaultConfig()
	assert.False(t, config.IsMemorySQLite())

	config.Path = ":memory:"
	assert.True(t, config.IsMemorySQLite())

	config.Path = "file::memory:?cache=shared"
	assert.True(t, config.IsMemorySQLite())

	config.Path = "file:test.db?mode=memory"
	assert.True(t, config.IsMemorySQLite())
}
