// Package db manages the database connection for the inventory system.
// SQLite is the default engine; MariaDB is optional and falls back to
// SQLite when the server cannot be reached.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// instance holds the singleton database manager
	// Protected by once for thread-safe initialization
	instance *Manager
	once     sync.Once
)

// NewManager creates a new database manager for the configured driver.
//
// When the driver is MariaDB and the connection attempt fails, the manager
// falls back to the configured SQLite database (if FallbackToSQLite is set)
// so the application stays usable without the server.
func NewManager(config *Config) (*Manager, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	gormConfig := &gorm.Config{
		SkipDefaultTransaction:                   config.SkipDefaultTransaction,
		DisableForeignKeyConstraintWhenMigrating: config.DisableForeignKeyConstraintWhenMigrating,
		PrepareStmt:                              config.PrepareStmt,
		Logger:                                   logger.Default.LogMode(getLogLevel(config.Logging.Level)),
	}

	driver := config.ActiveDriver()

	var (
		gormDB *gorm.DB
		err    error
	)
	switch driver {
	case DriverMariaDB:
		gormDB, err = gorm.Open(mysql.Open(config.MariaDBDSN()), gormConfig)
		if err != nil && config.FallbackToSQLite {
			driver = DriverSQLite
			gormDB, err = openSQLite(config, gormConfig)
			if err != nil {
				return nil, fmt.Errorf("mariadb unavailable and sqlite fallback failed: %w", err)
			}
		}
	default:
		gormDB, err = openSQLite(config, gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	return &Manager{
		config: config,
		db:     gormDB,
		driver: driver,
	}, nil
}

// openSQLite opens the SQLite database, creating the parent directory for
// file-backed databases on first use.
func openSQLite(config *Config, gormConfig *gorm.Config) (*gorm.DB, error) {
	if !config.IsMemorySQLite() {
		if dir := filepath.Dir(config.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}
	return gorm.Open(sqlite.Open(config.SQLiteDSN()), gormConfig)
}

// NewSingletonManager returns the singleton database manager instance.
//
// The first call initializes the singleton; subsequent calls ignore the
// config parameter and return the same instance. If the first call fails,
// the singleton stays uninitialized until the application restarts. There
// is no retry mechanism. For tests, use NewManager directly.
//
// Safe for concurrent calls; initialization runs once under sync.Once.
func NewSingletonManager(config *Config) (*Manager, error) {
	var initErr error
	once.Do(func() {
		instance, initErr = NewManager(config)
	})

	if instance == nil {
		if initErr != nil {
			return nil, fmt.Errorf("singleton initialization failed (permanent until restart): %w", initErr)
		}
		return nil, fmt.Errorf("singleton initialization failed with unknown error (permanent until restart)")
	}

	return instance, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SqlDB returns the underlying sql.DB instance
func (m *Manager) SqlDB() (*sql.DB, error) {
	return m.db.DB()
}

// Driver returns the driver actually in use. This differs from the
// configured driver after a MariaDB-to-SQLite fallback.
func (m *Manager) Driver() Driver {
	return m.driver
}

// Config returns the manager's configuration
func (m *Manager) Config() *Config {
	return m.config
}

// AutoMigrate creates or updates the tables for the given models
func (m *Manager) AutoMigrate(models ...interface{}) error {
	if err := m.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

// Ping tests the database connection
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Stats returns database connection statistics
func (m *Manager) Stats() (sql.DBStats, error) {
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}, err
	}
	return sqlDB.Stats(), nil
}

func getLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Error // Default to error
	}
}
