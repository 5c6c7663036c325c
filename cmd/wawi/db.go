package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ammar0144/wawi4go/pkg/model"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the database connection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.db.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("database unreachable: %w", err)
		}

		fmt.Printf("ok (%s)\n", a.db.Driver())
		return nil
	},
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// openApp already migrates; this command exists so the schema can
		// be created explicitly without touching any rows.
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		fmt.Printf("schema ready (%s): %d tables\n", a.db.Driver(), len(model.All()))
		return nil
	},
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show connection pool statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := a.db.Stats()
		if err != nil {
			return err
		}

		fmt.Printf("driver:           %s\n", a.db.Driver())
		fmt.Printf("open connections: %d\n", stats.OpenConnections)
		fmt.Printf("in use:           %d\n", stats.InUse)
		fmt.Printf("idle:             %d\n", stats.Idle)
		fmt.Printf("wait count:       %d\n", stats.WaitCount)

		if a.cache != nil {
			snapshot := a.cache.GetMetrics()
			fmt.Printf("cache hits:       %d\n", snapshot.CacheHits)
			fmt.Printf("cache misses:     %d\n", snapshot.CacheMisses)
			fmt.Printf("cache hit rate:   %.1f%%\n", snapshot.CacheHitRate)
		}
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbPingCmd)
	dbCmd.AddCommand(dbInitCmd)
	dbCmd.AddCommand(dbStatsCmd)
}
