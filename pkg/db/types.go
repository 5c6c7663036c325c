package db

import (
	"time"

	"gorm.io/gorm"
)

// Driver identifies the backing database engine
type Driver string

const (
	// DriverSQLite is the default, zero-setup engine
	DriverSQLite Driver = "sqlite"
	// DriverMariaDB is the optional server-backed engine
	DriverMariaDB Driver = "mariadb"
)

// Config holds database configuration for both supported drivers.
// Only the section matching Driver is consulted when connecting.
type Config struct {
	// Driver selects the engine. Empty defaults to sqlite.
	Driver Driver `json:"driver" yaml:"driver"`

	// MariaDB Connection Settings
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Database string `json:"database" yaml:"database"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`

	// SQLite Settings
	Path string `json:"path" yaml:"path"` // database file path

	// FallbackToSQLite opens the SQLite database instead when the
	// MariaDB connection attempt fails.
	FallbackToSQLite bool `json:"fallback_to_sqlite" yaml:"fallback_to_sqlite"`

	// Connection Pool Settings
	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time" yaml:"conn_max_idle_time"`

	// MariaDB Specific Settings
	Charset   string `json:"charset" yaml:"charset"`     // Default: utf8mb4
	Collation string `json:"collation" yaml:"collation"` // Default: utf8mb4_unicode_ci
	TimeZone  string `json:"timezone" yaml:"timezone"`   // Default: UTC

	// GORM Settings
	DisableForeignKeyConstraintWhenMigrating bool          `json:"disable_foreign_key_constraint_when_migrating" yaml:"disable_foreign_key_constraint_when_migrating"`
	SkipDefaultTransaction                   bool          `json:"skip_default_transaction" yaml:"skip_default_transaction"`
	PrepareStmt                              bool          `json:"prepare_stmt" yaml:"prepare_stmt"`
	QueryTimeout                             time.Duration `json:"query_timeout" yaml:"query_timeout"`

	// SSL Configuration (MariaDB only)
	SSL SSLConfig `json:"ssl" yaml:"ssl"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SSLConfig holds SSL/TLS configuration for MariaDB
type SSLConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	CertFile   string `json:"cert_file" yaml:"cert_file"`
	KeyFile    string `json:"key_file" yaml:"key_file"`
	CAFile     string `json:"ca_file" yaml:"ca_file"`
	SkipVerify bool   `json:"skip_verify" yaml:"skip_verify"` // Skip certificate verification (not recommended for production)
	ServerName string `json:"server_name" yaml:"server_name"`
}

// LoggingConfig controls database logging behavior
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // info, warn, error, silent

	LogSlowQueries     bool          `json:"log_slow_queries" yaml:"log_slow_queries"`
	SlowQueryThreshold time.Duration `json:"slow_query_threshold" yaml:"slow_query_threshold"`
}

// Manager manages the database connection
type Manager struct {
	config *Config
	db     *gorm.DB
	driver Driver // driver actually in use, after any fallback
}
