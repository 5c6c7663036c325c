// wawi is the command-line surface of the inventory system: products and
// customers over SQLite (default) or MariaDB, with an optional Redis cache.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ammar0144/wawi4go/pkg/config"
	"github.com/ammar0144/wawi4go/pkg/db"
	"github.com/ammar0144/wawi4go/pkg/manager"
	"github.com/ammar0144/wawi4go/pkg/model"
	"github.com/ammar0144/wawi4go/pkg/redis"
	"github.com/ammar0144/wawi4go/pkg/repository"
)

const (
	appName    = "WaWi"
	appVersion = "1.0.0"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wawi",
	Short: "WaWi - warehouse management for products and customers",
	Long: `WaWi is a small warehouse management system (Warenwirtschaft).

It manages products and customers in a relational database: SQLite by
default, MariaDB optionally. Configuration lives in a JSON file
(data/db_config.json by default) which is created on first run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, appVersion)
	},
}

// app bundles everything a command needs
type app struct {
	cfg       *config.Config
	db        *db.Manager
	cache     *redis.Manager
	products  *manager.ProductManager
	customers *manager.CustomerManager
}

// openApp loads the configuration, connects to the database, migrates the
// schema, and wires the managers. The cache is attached only when enabled
// and reachable; a failed cache never blocks the application.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	dbManager, err := db.NewManager(cfg.DatabaseConfig())
	if err != nil {
		return nil, err
	}

	if err := dbManager.AutoMigrate(model.All()...); err != nil {
		_ = dbManager.Close()
		return nil, err
	}

	if dbManager.Driver() != cfg.DatabaseConfig().ActiveDriver() {
		logger.Warn("mariadb unavailable, running on sqlite fallback",
			zap.String("path", cfg.SQLite.DatabasePath))
	}

	var cacheManager *redis.Manager
	if cfg.Redis.Enabled {
		cacheManager, err = redis.NewManager(cfg.CacheConfig())
		if err == nil {
			if pingErr := cacheManager.Ping(ctx); pingErr != nil {
				logger.Warn("redis unreachable, continuing without cache", zap.Error(pingErr))
				_ = cacheManager.Close()
				cacheManager = nil
			}
		} else {
			logger.Warn("invalid redis config, continuing without cache", zap.Error(err))
			cacheManager = nil
		}
	}

	productRepo := repository.NewGenericRepository[model.Product](dbManager, cacheManager)
	customerRepo := repository.NewGenericRepository[model.Customer](dbManager, cacheManager)

	return &app{
		cfg:       cfg,
		db:        dbManager,
		cache:     cacheManager,
		products:  manager.NewProductManager(productRepo, logger),
		customers: manager.NewCustomerManager(customerRepo, logger),
	}, nil
}

// close releases the app's connections
func (a *app) close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default data/db_config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
