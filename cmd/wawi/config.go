package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ammar0144/wawi4go/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Printf("config file: %s\n", cfg.Path())
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	},
}

var configSetDBCmd = &cobra.Command{
	Use:   "set-db <sqlite|mariadb>",
	Short: "Switch the database engine and persist the choice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if err := cfg.SetDBType(args[0]); err != nil {
			return err
		}

		fmt.Printf("db_type set to %s in %s\n", args[0], cfg.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDBCmd)
}
