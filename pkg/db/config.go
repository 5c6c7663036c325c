package db

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DefaultSQLitePath is the SQLite database file used when nothing else
// is configured.
const DefaultSQLitePath = "data/wawi.db"

// DefaultConfig returns a SQLite configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Driver:           DriverSQLite,
		Path:             DefaultSQLitePath,
		FallbackToSQLite: true,
		Port:             3306,
		Charset:          "utf8mb4",
		Collation:        "utf8mb4_unicode_ci",
		TimeZone:         "UTC",
		MaxOpenConns:     25,
		MaxIdleConns:     5,
		ConnMaxLifetime:  time.Hour,
		ConnMaxIdleTime:  30 * time.Minute,
		PrepareStmt:      true,
		QueryTimeout:     30 * time.Second,
		Logging: LoggingConfig{
			Level:              "error",
			LogSlowQueries:     true,
			SlowQueryThreshold: 200 * time.Millisecond,
		},
	}
}

// NewMariaDBConfig returns a MariaDB configuration with the default pool
// settings and SQLite fallback enabled.
func NewMariaDBConfig(host string, port int, database, username, password string) *Config {
	config := DefaultConfig()
	config.Driver = DriverMariaDB
	config.Host = host
	if port > 0 {
		config.Port = port
	}
	config.Database = database
	config.Username = username
	config.Password = password
	return config
}

// ActiveDriver returns the configured driver, defaulting to sqlite
func (c *Config) ActiveDriver() Driver {
	if c.Driver == "" {
		return DriverSQLite
	}
	return c.Driver
}

// Validate checks if the database configuration is valid
func (c *Config) Validate() error {
	switch c.ActiveDriver() {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("sqlite database path is required")
		}
	case DriverMariaDB:
		if c.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Port < 1 || c.Port > 65535 {
			return fmt.Errorf("database port must be between 1 and 65535, got %d", c.Port)
		}
		if c.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Username == "" {
			return fmt.Errorf("database username is required")
		}
		if c.FallbackToSQLite && c.Path == "" {
			return fmt.Errorf("sqlite fallback requires a database path")
		}
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}

	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max_open_conns must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns cannot be greater than max_open_conns")
	}

	// Validate TLS configuration if SSL is enabled
	if c.SSL.Enabled && !c.SSL.SkipVerify {
		if err := c.validateTLSFiles(); err != nil {
			return fmt.Errorf("TLS configuration error: %w", err)
		}
	}

	return nil
}

// validateTLSFiles validates that TLS certificate files exist and are readable
func (c *Config) validateTLSFiles() error {
	if c.SSL.CAFile != "" {
		if _, err := os.Stat(c.SSL.CAFile); err != nil {
			return fmt.Errorf("CA file not accessible: %w", err)
		}
	}

	if c.SSL.CertFile != "" || c.SSL.KeyFile != "" {
		// Both cert and key must be provided together
		if c.SSL.CertFile == "" || c.SSL.KeyFile == "" {
			return fmt.Errorf("both CertFile and KeyFile must be provided together")
		}

		if _, err := os.Stat(c.SSL.CertFile); err != nil {
			return fmt.Errorf("client certificate file not accessible: %w", err)
		}

		if _, err := os.Stat(c.SSL.KeyFile); err != nil {
			return fmt.Errorf("client key file not accessible: %w", err)
		}
	}

	return nil
}

// MariaDBDSN returns the MariaDB Data Source Name using the official MySQL
// driver config builder
func (c *Config) MariaDBDSN() string {
	cfg := mysql.Config{
		User:                 c.Username,
		Passwd:               c.Password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%d", c.Host, c.Port),
		DBName:               c.Database,
		Collation:            c.Collation,
		Loc:                  parseLocation(c.TimeZone),
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	if c.SSL.Enabled {
		if c.SSL.SkipVerify {
			cfg.TLSConfig = "skip-verify"
		} else {
			tlsConfig := &tls.Config{
				InsecureSkipVerify: false,
			}

			if c.SSL.CAFile != "" {
				caCert, err := os.ReadFile(c.SSL.CAFile)
				if err == nil {
					pool := x509.NewCertPool()
					if pool.AppendCertsFromPEM(caCert) {
						tlsConfig.RootCAs = pool
					}
				}
			}

			if c.SSL.CertFile != "" && c.SSL.KeyFile != "" {
				if cert, err := tls.LoadX509KeyPair(c.SSL.CertFile, c.SSL.KeyFile); err == nil {
					tlsConfig.Certificates = []tls.Certificate{cert}
				}
			}

			if c.SSL.ServerName != "" {
				tlsConfig.ServerName = c.SSL.ServerName
			}

			// Register under a name derived from the SSL settings so
			// distinct Config instances don't collide.
			tlsName := c.generateTLSConfigName()
			if err := mysql.RegisterTLSConfig(tlsName, tlsConfig); err == nil {
				cfg.TLSConfig = tlsName
			}
		}
	}

	return cfg.FormatDSN()
}

// SQLiteDSN returns the SQLite Data Source Name
func (c *Config) SQLiteDSN() string {
	return c.Path
}

// IsMemorySQLite reports whether the SQLite path points at an in-memory
// database rather than a file.
func (c *Config) IsMemorySQLite() bool {
	return strings.Contains(c.Path, ":memory:") || strings.Contains(c.Path, "mode=memory")
}

// generateTLSConfigName creates a unique name for TLS config registration
func (c *Config) generateTLSConfigName() string {
	h := sha256.New()
	h.Write([]byte(c.SSL.CAFile))
	h.Write([]byte(c.SSL.CertFile))
	h.Write([]byte(c.SSL.KeyFile))
	h.Write([]byte(c.SSL.ServerName))
	hash := hex.EncodeToString(h.Sum(nil))[:16]
	return fmt.Sprintf("wawi4go_tls_%s", hash)
}

// parseLocation parses timezone string to *time.Location
func parseLocation(tz string) *time.Location {
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		// Fallback to UTC if timezone parsing fails
		loc, _ = time.LoadLocation("UTC")
	}
	return loc
}
