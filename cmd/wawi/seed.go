package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ammar0144/wawi4go/pkg/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with demo data",
	Long: `Fill an empty database with a small demo data set.

Tables that already contain rows are left untouched, so seeding an
existing database is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		result, err := seed.Run(cmd.Context(), a.products, a.customers, logger)
		if err != nil {
			return err
		}

		if result.ProductsSkipped {
			fmt.Println("products: skipped (table not empty)")
		} else {
			fmt.Printf("products: %d added\n", result.ProductsAdded)
		}
		if result.CustomersSkipped {
			fmt.Println("customers: skipped (table not empty)")
		} else {
			fmt.Printf("customers: %d added\n", result.CustomersAdded)
		}
		return nil
	},
}
