// Package config loads and persists the application configuration file.
// The file is JSON with comments and trailing commas tolerated; when it
// does not exist, the defaults are written back so the user has something
// to edit.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/redis"
)

// Default locations, relative to the working directory
const (
	DefaultPath       = "data/db_config.json"
	DefaultSQLitePath = db.DefaultSQLitePath
)

// Config is the on-disk application configuration
type Config struct {
	// DBType selects the database engine: "sqlite" (default) or "mariadb"
	DBType string `json:"db_type"`

	MariaDB MariaDBConfig `json:"mariadb"`
	SQLite  SQLiteConfig  `json:"sqlite"`
	Redis   redis.Config  `json:"redis"`
	Logging LoggingConfig `json:"logging"`

	// path the config was loaded from; not serialized
	path string
}

// MariaDBConfig holds the MariaDB connection section
type MariaDBConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// SQLiteConfig holds the SQLite section
type SQLiteConfig struct {
	DatabasePath string `json:"database_path"`
}

// LoggingConfig holds the application logging section
type LoggingConfig struct {
	Level string `json:"level"`          // debug, info, warn, error
	File  string `json:"file,omitempty"` // optional log file path
}

// Default returns the built-in configuration: SQLite under data/, cache
// disabled, info-level logging.
func Default() *Config {
	return &Config{
		DBType: string(db.DriverSQLite),
		MariaDB: MariaDBConfig{
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "",
			Database: "wawi",
		},
		SQLite: SQLiteConfig{
			DatabasePath: DefaultSQLitePath,
		},
		Redis: *redis.DefaultConfig(),
		Logging: LoggingConfig{
			Level: "info",
		},
		path: DefaultPath,
	}
}

// Load reads the configuration from path, falling back to DefaultPath when
// path is empty. A missing file is not an error: the defaults are saved to
// that location and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if saveErr := cfg.Save(); saveErr != nil {
			return nil, fmt.Errorf("writing default config: %w", saveErr)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := json.Unmarshal(standardized, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to its path, creating the parent
// directory if needed
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = DefaultPath
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Path returns the location this configuration was loaded from
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultPath
	}
	return c.path
}

// SetDBType switches the database engine and persists the change
func (c *Config) SetDBType(dbType string) error {
	switch db.Driver(dbType) {
	case db.DriverSQLite, db.DriverMariaDB:
	default:
		return fmt.Errorf("invalid database type %q (want %q or %q)", dbType, db.DriverSQLite, db.DriverMariaDB)
	}

	c.DBType = dbType
	return c.Save()
}

// DatabaseConfig resolves the active sections into a connection config
func (c *Config) DatabaseConfig() *db.Config {
	dbConfig := db.DefaultConfig()
	dbConfig.Driver = db.Driver(c.DBType)
	dbConfig.Path = c.SQLite.DatabasePath
	if dbConfig.Path == "" {
		dbConfig.Path = DefaultSQLitePath
	}

	dbConfig.Host = c.MariaDB.Host
	if c.MariaDB.Port > 0 {
		dbConfig.Port = c.MariaDB.Port
	}
	dbConfig.Username = c.MariaDB.User
	dbConfig.Password = c.MariaDB.Password
	dbConfig.Database = c.MariaDB.Database
	dbConfig.Logging.Level = gormLogLevel(c.Logging.Level)

	return dbConfig
}

// CacheConfig returns the cache section
func (c *Config) CacheConfig() *redis.Config {
	cacheConfig := c.Redis
	return &cacheConfig
}

// validate checks the loaded file for values Load should reject outright
func (c *Config) validate() error {
	switch db.Driver(c.DBType) {
	case db.DriverSQLite, db.DriverMariaDB, "":
	default:
		return fmt.Errorf("invalid db_type %q", c.DBType)
	}
	return nil
}

// gormLogLevel maps the application log level onto gorm's coarser levels
func gormLogLevel(level string) string {
	switch level {
	case "debug":
		return "info"
	case "info", "warn", "error", "silent":
		return level
	default:
		return "error"
	}
}
